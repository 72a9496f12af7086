package dto

import "github.com/vporoshin/depositbook/internal/core/domain"

// CreateClientRequest defines the data needed to register a new client.
type CreateClientRequest struct {
	FullName string `json:"fullName" validate:"required"`
}

// RenameClientRequest defines the data needed to rename a client.
type RenameClientRequest struct {
	FullName string `json:"fullName" validate:"required"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID string `json:"clientID"`
	FullName string `json:"fullName"`
}

// ToClientResponse converts a domain.Client to its response DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID: c.ClientID,
		FullName: c.FullName,
	}
}
