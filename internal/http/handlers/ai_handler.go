// README: Dispatch assistant handler; suggests a status note for a booking.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courier/internal/ai"
	"courier/internal/modules/booking"
	"courier/internal/types"
)

type AIHandler struct {
	booking   *booking.Service
	assistant ai.NoteSuggester
}

func NewAIHandler(bookingSvc *booking.Service, assistant ai.NoteSuggester) *AIHandler {
	return &AIHandler{booking: bookingSvc, assistant: assistant}
}

type suggestNoteReq struct {
	TargetStatus string `json:"target_status"`
	RiderName    string `json:"rider_name"`
}

func (h *AIHandler) SuggestNote(c *gin.Context) {
	if h.assistant == nil {
		writeError(c, http.StatusNotImplemented, "assistant not configured")
		return
	}
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	var req suggestNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	b, err := h.booking.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	entries, err := h.booking.History(c.Request.Context(), b.ID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	// Only the tail of the trail is useful context.
	const maxHistory = 5
	if len(entries) > maxHistory {
		entries = entries[len(entries)-maxHistory:]
	}
	history := make([]string, len(entries))
	for i, e := range entries {
		history[i] = string(e.Status) + ": " + e.Note
	}

	note, err := h.assistant.SuggestStatusNote(c.Request.Context(), ai.NoteInput{
		TrackingID:    b.TrackingID,
		CurrentStatus: string(b.Status),
		TargetStatus:  req.TargetStatus,
		RiderName:     req.RiderName,
		RecentHistory: history,
	})
	if err != nil {
		writeError(c, http.StatusBadGateway, "assistant unavailable")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"note": note})
}
