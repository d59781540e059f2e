package models

import "time"

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TagStatus TagStatus `json:"tag_status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateClientRequest represents the request body for creating a client
type CreateClientRequest struct {
	Name string `json:"name"`
}

// UpdateClientRequest represents the request body for updating a client
type UpdateClientRequest struct {
	Name string `json:"name"`
}
