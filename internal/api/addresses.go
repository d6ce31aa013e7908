package api

import (
	"context"
	"net/http"
	"net/url"

	"cedra_front_end/internal/models"
)

// FetchAddresses liste les adresses de l'utilisateur connecté.
func (c *Client) FetchAddresses(ctx context.Context) ([]models.Address, error) {
	var resp struct {
		Addresses []models.Address `json:"addresses"`
	}
	if err := c.do(ctx, http.MethodGet, "/addresses/mine", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Addresses, nil
}

// CreateAddress enregistre une nouvelle adresse.
func (c *Client) CreateAddress(ctx context.Context, addr models.Address) (*models.Address, error) {
	var resp struct {
		Address *models.Address `json:"address"`
	}
	if err := c.do(ctx, http.MethodPost, "/addresses", addr, &resp); err != nil {
		return nil, err
	}
	if resp.Address == nil {
		// Certains backends renvoient l'adresse telle quelle sans enveloppe.
		return &addr, nil
	}
	return resp.Address, nil
}

// UpdateAddress modifie une adresse existante.
func (c *Client) UpdateAddress(ctx context.Context, addr models.Address) error {
	return c.do(ctx, http.MethodPut, "/addresses/"+url.PathEscape(addr.ID), addr, nil)
}

// DeleteAddress supprime une adresse.
func (c *Client) DeleteAddress(ctx context.Context, addressID string) error {
	return c.do(ctx, http.MethodDelete, "/addresses/"+url.PathEscape(addressID), nil, nil)
}
