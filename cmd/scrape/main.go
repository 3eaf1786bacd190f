package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/ocscribes/shift-sync/backend/internal/config"
	"github.com/ocscribes/shift-sync/backend/internal/names"
	"github.com/ocscribes/shift-sync/backend/internal/portal"
	"github.com/ocscribes/shift-sync/backend/internal/repository"
	"github.com/ocscribes/shift-sync/backend/internal/scrape"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// one-shot companion to the API server, intended for cron
func main() {
	var op string
	flag.StringVar(&op, "op", "run", "operation to run (run, clean-duplicates, reset)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not dial; ping to surface connection errors now
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case "run":
		client := portal.NewClient(portal.ClientOptions{
			BaseURL:        cfg.Portal.BaseURL,
			Username:       cfg.Portal.Username,
			Password:       cfg.Portal.Password,
			RequestTimeout: time.Duration(cfg.Portal.RequestTimeout) * time.Second,
		})
		navigator := portal.NewNavigator(
			client,
			time.Duration(cfg.Portal.SiteChangeDelay)*time.Millisecond,
			time.Duration(cfg.Portal.PageLoadDelay)*time.Millisecond,
		)
		standardizer := names.NewStandardizer(cfg.Legend.Path)
		engine := scrape.NewEngine(cfg.ParseSites(), navigator, repo, standardizer)

		result := engine.Run(context.Background())

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			logger.Error("failed to serialize run result", "error", err)
			os.Exit(1)
		}
		os.Stdout.Write(append(out, '\n'))

		if !result.Success {
			os.Exit(1)
		}
	case "clean-duplicates":
		removed, err := repo.CleanDuplicateShifts()
		if err != nil {
			logger.Error("failed to clean duplicate shifts", "error", err)
			os.Exit(1)
		}
		logger.Info("duplicate shifts removed", "removed", removed)
	case "reset":
		removed, err := repo.ResetShiftRecords()
		if err != nil {
			logger.Error("failed to reset shift records", "error", err)
			os.Exit(1)
		}
		logger.Info("shift records reset", "removed", removed)
	default:
		logger.Error("unknown operation", "op", op)
		os.Exit(1)
	}
}
