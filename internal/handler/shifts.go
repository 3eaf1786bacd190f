package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/ocscribes/shift-sync/backend/internal/validators"
)

// GetShifts serves the shift query API. A single date or an inclusive
// start/end range must be given; both at once is rejected.
func (h *Handler) GetShifts(w http.ResponseWriter, r *http.Request) {
	params := validators.ShiftQueryParams{
		Date:      r.URL.Query().Get("date"),
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	}

	if result := validators.ValidateShiftQueryParams(params); !result.Valid {
		h.errorResponse(w, r, strings.Join(result.Errors, "; "))
		return
	}

	if params.Date != "" {
		date, err := time.Parse("2006-01-02", params.Date)
		if err != nil {
			h.errorResponse(w, r, "invalid date")
			return
		}

		shifts, err := h.repository.GetShiftsForDate(date)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		h.successResponse(w, r, "shifts retrieved", shifts)
		return
	}

	start, err := time.Parse("2006-01-02", params.StartDate)
	if err != nil {
		h.errorResponse(w, r, "invalid start date")
		return
	}
	end, err := time.Parse("2006-01-02", params.EndDate)
	if err != nil {
		h.errorResponse(w, r, "invalid end date")
		return
	}

	shifts, err := h.repository.GetShiftsInRange(start, end)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shifts retrieved", shifts)
}

// GetCurrentShifts returns the shifts covering the current moment,
// including overnight shifts that started the previous day.
func (h *Handler) GetCurrentShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.repository.GetCurrentShifts(time.Now().UTC())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "current shifts retrieved", shifts)
}
