package models

import "time"

// Nusuk agreement statuses.
const (
	NusukBlank           = ""
	NusukWaitingApproval = "waiting_approval"
	NusukApproved        = "approved"
	NusukRejected        = "rejected"
)

// ValidNusukStatus reports whether s is a known agreement status.
func ValidNusukStatus(s string) bool {
	switch s {
	case NusukBlank, NusukWaitingApproval, NusukApproved, NusukRejected:
		return true
	}
	return false
}

// NusukAgreement tracks the externally issued Nusuk approval reference for a
// reservation. One agreement per reservation, upserted by reservation number.
type NusukAgreement struct {
	NusukNo       string    `json:"nusuk_no"`
	ReservationNo string    `json:"reservation_no"`
	Status        string    `json:"status"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UpsertNusukRequest represents the request body for setting a reservation's
// Nusuk agreement
type UpsertNusukRequest struct {
	NusukNo string `json:"nusuk_no"`
	Status  string `json:"status"`
}
