package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"hotel-backend/internal/documents"
	"hotel-backend/internal/models"
	"hotel-backend/internal/services"
	"hotel-backend/internal/storage"
	"hotel-backend/pkg/utils"

	"github.com/gorilla/mux"
)

// maxProofSize caps proof uploads at 10 MB.
const maxProofSize = 10 << 20

type PaymentHandler struct {
	Service  *services.PaymentService
	Clients  *services.ClientService
	Uploader *storage.Uploader
}

func NewPaymentHandler(s *services.PaymentService, clients *services.ClientService, uploader *storage.Uploader) *PaymentHandler {
	return &PaymentHandler{Service: s, Clients: clients, Uploader: uploader}
}

func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.Service.RecordPayment(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, payment)
}

// RecordForReservation records a payment against the reservation in the path.
// The path wins over any reservation_no in the body.
func (h *PaymentHandler) RecordForReservation(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.ReservationNo = mux.Vars(r)["reservation_no"]

	payment, err := h.Service.RecordPayment(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := h.Service.GetPayment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Service.ListPayments(r.Context(), includeDeleted(r))
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeletePayment(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// UploadProof accepts a multipart "file" part, pushes it to object storage
// and records the public URL on the payment.
func (h *PaymentHandler) UploadProof(w http.ResponseWriter, r *http.Request) {
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

	url, err := h.Uploader.Upload(r.Context(), "payments", header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	payment, err := h.Service.AttachProof(r.Context(), mux.Vars(r)["id"], url)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, payment)
}

// Receipt streams the payment receipt PDF.
func (h *PaymentHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	payment, err := h.Service.GetPayment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	clientName := services.UnknownClient
	if client, err := h.Clients.GetClient(r.Context(), payment.ClientID); err == nil {
		clientName = client.Name
	}

	data, err := documents.PaymentReceipt(payment, clientName)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "receipt_"+id+".pdf"))
	w.Write(data)
}

// History lists the active payments applied to one reservation.
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Service.PaymentsForReservation(r.Context(), mux.Vars(r)["reservation_no"])
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, payments)
}
