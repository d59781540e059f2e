package handlers

import (
	"encoding/json"
	"net/http"

	"hotel-backend/internal/models"
	"hotel-backend/internal/services"
	"hotel-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type NusukHandler struct {
	Service *services.NusukService
}

func NewNusukHandler(s *services.NusukService) *NusukHandler {
	return &NusukHandler{Service: s}
}

func (h *NusukHandler) SetAgreement(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertNusukRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	agreement, err := h.Service.SetAgreement(r.Context(), mux.Vars(r)["reservation_no"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, agreement)
}

func (h *NusukHandler) GetAgreement(w http.ResponseWriter, r *http.Request) {
	agreement, err := h.Service.GetAgreement(r.Context(), mux.Vars(r)["reservation_no"])
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, agreement)
}

func (h *NusukHandler) ListAgreements(w http.ResponseWriter, r *http.Request) {
	agreements, err := h.Service.ListAgreements(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, agreements)
}
