package api

import (
	"context"
	"net/http"

	"cedra_front_end/internal/models"
)

// CheckoutRequest est le contenu envoyé au backend pour créer une
// commande. Le paiement lui-même (Stripe, etc.) est entièrement géré
// côté backend ; le client ne voit qu'une URL de redirection.
type CheckoutRequest struct {
	Items           []models.CartItem `json:"items"`
	ShippingAddress string            `json:"shipping_address_id"`
	BillingAddress  string            `json:"billing_address_id,omitempty"`
	CouponCode      string            `json:"coupon_code,omitempty"`
}

type CheckoutResult struct {
	Success    bool   `json:"success"`
	OrderID    string `json:"order_id"`
	PaymentURL string `json:"payment_url"`
}

// Checkout crée la commande côté backend à partir du panier local.
func (c *Client) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	var resp CheckoutResult
	if err := c.do(ctx, http.MethodPost, "/checkout", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, ErrServerRefused
	}
	return &resp, nil
}
