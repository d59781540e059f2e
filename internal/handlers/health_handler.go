package handlers

import (
	"net/http"

	"hotel-backend/internal/health"
	"hotel-backend/pkg/utils"
)

type HealthHandler struct {
	Checker *health.Checker
}

func NewHealthHandler(c *health.Checker) *HealthHandler {
	return &HealthHandler{Checker: c}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.Checker.Check()

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	utils.JSON(w, code, status)
}
