package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"hotel-backend/internal/documents"
	"hotel-backend/internal/models"
	"hotel-backend/internal/services"
	"hotel-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ReservationHandler struct {
	Service *services.ReservationService
}

func NewReservationHandler(s *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: s}
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.Service.CreateReservation(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, res)
}

func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.GetReservation(r.Context(), mux.Vars(r)["reservation_no"])
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListReservations(r.Context(), includeDeleted(r))
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, list)
}

func (h *ReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.Service.UpdateReservation(r.Context(), mux.Vars(r)["reservation_no"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteReservation(r.Context(), mux.Vars(r)["reservation_no"]); err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Summary returns the aggregate financial report over active reservations.
func (h *ReservationHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summarize(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, summary)
}

func (h *ReservationHandler) servePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

// ConfirmationLetter streams the booking confirmation PDF.
func (h *ReservationHandler) ConfirmationLetter(w http.ResponseWriter, r *http.Request) {
	no := mux.Vars(r)["reservation_no"]
	res, err := h.Service.GetReservation(r.Context(), no)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := documents.ConfirmationLetter(res)
	if err != nil {
		writeError(w, err)
		return
	}
	h.servePDF(w, fmt.Sprintf("confirmation_%s.pdf", no), data)
}

// Voucher streams the hotel voucher PDF.
func (h *ReservationHandler) Voucher(w http.ResponseWriter, r *http.Request) {
	no := mux.Vars(r)["reservation_no"]
	res, err := h.Service.GetReservation(r.Context(), no)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := documents.Voucher(res)
	if err != nil {
		writeError(w, err)
		return
	}
	h.servePDF(w, fmt.Sprintf("voucher_%s.pdf", no), data)
}
