package handlers

import (
	"encoding/json"
	"net/http"

	"hotel-backend/internal/models"
	"hotel-backend/internal/services"
	"hotel-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type HotelHandler struct {
	Service *services.HotelService
}

func NewHotelHandler(s *services.HotelService) *HotelHandler {
	return &HotelHandler{Service: s}
}

func (h *HotelHandler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	hotel, err := h.Service.CreateHotel(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, hotel)
}

func (h *HotelHandler) GetHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Service.GetHotel(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, hotel)
}

func (h *HotelHandler) ListHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.Service.ListHotels(r.Context(), includeDeleted(r))
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, hotels)
}

func (h *HotelHandler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	hotel, err := h.Service.UpdateHotel(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, hotel)
}

func (h *HotelHandler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteHotel(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
