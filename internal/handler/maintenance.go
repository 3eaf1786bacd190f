package handler

import (
	"net/http"
)

func (h *Handler) CleanDuplicates(w http.ResponseWriter, r *http.Request) {
	removed, err := h.repository.CleanDuplicateShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "duplicate shifts removed", map[string]int64{"removed": removed})
}

// ResetShifts deletes every shift record. Scribes, providers, and the
// name legend survive a reset; the next run repopulates the table.
func (h *Handler) ResetShifts(w http.ResponseWriter, r *http.Request) {
	removed, err := h.repository.ResetShiftRecords()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift records reset", map[string]int64{"removed": removed})
}
