package analytics

import (
	"encoding/json"
	"net/http"

	myErr "feedback-main/internal/types/errors"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	service AnalyticsService
	logger  *zap.SugaredLogger
}

func NewHandler(service AnalyticsService, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetFormStats handles GET /forms/{form_id}/stats
func (h *Handler) GetFormStats(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["form_id"]
	if _, err := uuid.Parse(formID); err != nil {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.logger)
		return
	}

	stats, err := h.service.GetStats(r.Context(), formID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		h.logger.Errorf("Failed to encode response: %v", err)
	}
}
