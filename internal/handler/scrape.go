package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/ocscribes/shift-sync/backend/internal/domain"
)

const runLockKey = "shift_sync:scrape_lock"

// RunScrape executes one synchronous scrape-and-sync run. A redis lock
// serializes runs so concurrent triggers cannot hammer the portal; the
// lock expires on its own if the process dies mid-run.
func (h *Handler) RunScrape(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	acquired, err := h.redisClient.SetNX(ctx, runLockKey, time.Now().UTC().Format(time.RFC3339),
		time.Duration(h.config.Redis.RunLockExpiration)*time.Second).Result()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !acquired {
		h.errorResponse(w, r, "a scrape run is already in progress")
		return
	}
	defer func() {
		if err := h.redisClient.Del(context.Background(), runLockKey).Err(); err != nil {
			slog.Warn("failed to release scrape lock", "error", err)
		}
	}()

	result := h.engine.Run(ctx)

	h.publishScrapeReport(result)

	status := http.StatusOK
	switch {
	case !result.Success:
		status = http.StatusInternalServerError
	case len(result.Errors) > 0:
		status = http.StatusMultiStatus
	}

	h.writeJSON(w, r, status, Response{
		Success: result.Success,
		Message: "scrape run finished",
		Data:    result,
	})
}

// publishScrapeReport queues the run summary for the notifier binary.
// Failures are logged and swallowed; the run result has already been
// committed and is returned to the caller regardless.
func (h *Handler) publishScrapeReport(result domain.ScrapeResult) {
	mailMessage := domain.MailMessage{
		Type: "scrape_report",
		To:   h.config.Email.ReportRecipient,
		Data: domain.ScrapeReportMailData{
			Success:       result.Success,
			ShiftsScraped: result.ShiftsScraped,
			ShiftsCreated: result.ShiftsCreated,
			ShiftsUpdated: result.ShiftsUpdated,
			Errors:        result.Errors,
			Timestamp:     result.Timestamp,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		slog.Error("failed to serialize scrape report", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.reportChannel.PublishWithContext(
		ctx,
		"",
		"scrape_report_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		slog.Error("failed to publish scrape report", "error", err)
	}
}
