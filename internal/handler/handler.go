package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/ocscribes/shift-sync/backend/internal/config"
	"github.com/ocscribes/shift-sync/backend/internal/repository"
	"github.com/ocscribes/shift-sync/backend/internal/scrape"
)

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	repository    *repository.Repository
	translator    ut.Translator
	reportChannel *amqp.Channel
	redisClient   *redis.Client
	engine        *scrape.Engine
	operatorHash  []byte

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, reportCh *amqp.Channel, rdb *redis.Client, engine *scrape.Engine, operatorHash []byte) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:      validate,
		config:        cfg,
		repository:    repo,
		translator:    trans,
		reportChannel: reportCh,
		redisClient:   rdb,
		engine:        engine,
		operatorHash:  operatorHash,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// everything below requires an authenticated operator session
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.GetShifts)
			r.Get("/current", h.GetCurrentShifts)
		})

		r.Post("/scrape/run", h.RunScrape)

		r.Route("/maintenance", func(r chi.Router) {
			r.Post("/clean-duplicates", h.CleanDuplicates)
			r.Post("/reset", h.ResetShifts)
		})
	})
}
