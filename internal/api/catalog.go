package api

import (
	"context"
	"net/http"
	"net/url"

	"cedra_front_end/internal/models"
)

// FetchProducts liste les produits du catalogue, avec filtres optionnels
// (category, search, page...) passés tels quels au backend.
func (c *Client) FetchProducts(ctx context.Context, filters url.Values) ([]models.Product, error) {
	path := "/products"
	if len(filters) > 0 {
		path += "?" + filters.Encode()
	}

	var resp struct {
		Products []models.Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// FetchProduct récupère un produit avec ses variantes.
func (c *Client) FetchProduct(ctx context.Context, productID string) (*models.Product, error) {
	var resp struct {
		Product *models.Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(productID), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Product == nil {
		return nil, ErrServerRefused
	}
	return resp.Product, nil
}
