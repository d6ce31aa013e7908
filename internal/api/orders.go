package api

import (
	"context"
	"net/http"
	"net/url"

	"cedra_front_end/internal/models"
)

// FetchMyOrders liste les commandes de l'utilisateur connecté.
func (c *Client) FetchMyOrders(ctx context.Context) ([]models.Order, error) {
	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/orders/mine", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// FetchOrder récupère une commande par identifiant.
func (c *Client) FetchOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var resp struct {
		Order *models.Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Order == nil {
		return nil, ErrServerRefused
	}
	return resp.Order, nil
}

// --- Administration des commandes ---

// FetchAllOrders liste toutes les commandes (admin seulement côté backend).
func (c *Client) FetchAllOrders(ctx context.Context, filters url.Values) ([]models.Order, error) {
	path := "/admin/orders"
	if len(filters) > 0 {
		path += "?" + filters.Encode()
	}

	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// UpdateOrderStatus change le statut d'une commande (admin).
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, "/admin/orders/"+url.PathEscape(orderID)+"/status", body, nil)
}
