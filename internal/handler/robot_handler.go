package handler

import (
	"net/http"
	"strconv"

	"robomart/internal/model"
	"robomart/internal/service"

	"github.com/rs/zerolog"
)

// RobotHandler handles robot delivery-plan HTTP requests.
type RobotHandler struct {
	service service.RobotService
	logger  zerolog.Logger
}

// NewRobotHandler creates a new robot handler.
func NewRobotHandler(service service.RobotService, logger zerolog.Logger) *RobotHandler {
	return &RobotHandler{
		service: service,
		logger:  logger.With().Str("handler", "robot").Logger(),
	}
}

// DeliveryPlan handles GET /api/robot/delivery-plan?capacity=<int> requests.
// An empty pending set produces an empty plan, not an error.
func (h *RobotHandler) DeliveryPlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	capacityStr := r.URL.Query().Get("capacity")
	if capacityStr == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "capacity parameter is required", h.logger)
		return
	}

	capacity, err := strconv.Atoi(capacityStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "capacity must be an integer", h.logger)
		return
	}

	plan, err := h.service.DeliveryPlan(r.Context(), capacity)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}
