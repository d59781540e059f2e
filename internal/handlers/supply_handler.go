package handlers

import (
	"encoding/json"
	"net/http"

	"hotel-backend/internal/models"
	"hotel-backend/internal/services"
	"hotel-backend/internal/storage"
	"hotel-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type SupplyHandler struct {
	Service  *services.SupplyService
	Uploader *storage.Uploader
}

func NewSupplyHandler(s *services.SupplyService, uploader *storage.Uploader) *SupplyHandler {
	return &SupplyHandler{Service: s, Uploader: uploader}
}

func (h *SupplyHandler) CreateSupply(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSupplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	supply, err := h.Service.CreateSupply(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, supply)
}

func (h *SupplyHandler) GetSupply(w http.ResponseWriter, r *http.Request) {
	supply, err := h.Service.GetSupply(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, supply)
}

func (h *SupplyHandler) ListSupplies(w http.ResponseWriter, r *http.Request) {
	supplies, err := h.Service.ListSupplies(r.Context(), includeDeleted(r))
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, supplies)
}

func (h *SupplyHandler) UpdateSupply(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSupplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	supply, err := h.Service.UpdateSupply(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, supply)
}

func (h *SupplyHandler) DeleteSupply(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteSupply(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// UploadProof stores the vendor confirmation document alongside the supply.
func (h *SupplyHandler) UploadProof(w http.ResponseWriter, r *http.Request) {
	if h.Uploader == nil {
		utils.Error(w, http.StatusServiceUnavailable, "File storage is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxProofSize); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "file part is required")
		return
	}
	defer file.Close()

	url, err := h.Uploader.Upload(r.Context(), "supplies", header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	supply, err := h.Service.AttachProof(r.Context(), mux.Vars(r)["id"], url)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, supply)
}
