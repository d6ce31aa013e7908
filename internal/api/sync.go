package api

import (
	"context"
	"net/http"

	"cedra_front_end/internal/models"
)

// serverCartLine est la forme brute d'une ligne de panier renvoyée par
// /cart/getbycustid. Tous les champs sont optionnels : un champ absent
// se dégrade en zéro/vide, jamais en erreur.
type serverCartLine struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	Quantity      int     `json:"quantity"`
	Color         string  `json:"color"`
	Model         string  `json:"model"`
	ColorID       string  `json:"color_id"`
	ModelID       string  `json:"model_id"`
	Image         string  `json:"image"`

	Product *struct {
		Image         string   `json:"image"`
		Images        []string `json:"images"`
		VariantImages []string `json:"variant_images"`
	} `json:"product"`
}

// image choisit l'aperçu d'une ligne : image de la variante, puis image
// principale du produit, puis première image du produit, puis première
// image de variante, sinon rien.
func (l serverCartLine) image() string {
	if l.Image != "" {
		return l.Image
	}
	if l.Product != nil {
		if l.Product.Image != "" {
			return l.Product.Image
		}
		if len(l.Product.Images) > 0 {
			return l.Product.Images[0]
		}
		if len(l.Product.VariantImages) > 0 {
			return l.Product.VariantImages[0]
		}
	}
	return ""
}

// FetchCart récupère le panier serveur de l'utilisateur connecté.
func (c *Client) FetchCart(ctx context.Context) ([]models.CartItem, error) {
	var resp struct {
		Success bool `json:"success"`
		Cart    struct {
			Items []serverCartLine `json:"items"`
		} `json:"cart"`
	}

	if err := c.do(ctx, http.MethodGet, "/cart/getbycustid", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, ErrServerRefused
	}

	items := make([]models.CartItem, 0, len(resp.Cart.Items))
	for _, line := range resp.Cart.Items {
		items = append(items, models.CartItem{
			ProductID:     line.ProductID,
			Name:          line.Name,
			Price:         line.Price,
			OriginalPrice: line.OriginalPrice,
			Quantity:      line.Quantity,
			Color:         line.Color,
			Model:         line.Model,
			ColorID:       line.ColorID,
			ModelID:       line.ModelID,
			Image:         line.image(),
		})
	}
	return items, nil
}

// wishlistRef est la clé envoyée au backend pour ajouter ou retirer une
// entrée de la liste d'envies.
type wishlistRef struct {
	ProductID string  `json:"product_id"`
	ModelID   *string `json:"model_id"`
	ColorID   *string `json:"color_id"`
}

// AddWishlistItem ajoute une entrée côté serveur.
func (c *Client) AddWishlistItem(ctx context.Context, productID string, modelID, colorID *string) error {
	return c.do(ctx, http.MethodPost, "/wishlist/additem",
		wishlistRef{ProductID: productID, ModelID: modelID, ColorID: colorID}, nil)
}

// RemoveWishlistItem retire une entrée côté serveur.
func (c *Client) RemoveWishlistItem(ctx context.Context, productID string, modelID, colorID *string) error {
	return c.do(ctx, http.MethodDelete, "/wishlist/deleteitem",
		wishlistRef{ProductID: productID, ModelID: modelID, ColorID: colorID}, nil)
}

// FetchWishlist récupère la liste d'envies serveur.
func (c *Client) FetchWishlist(ctx context.Context) ([]models.WishlistItem, error) {
	var resp struct {
		Success  bool `json:"success"`
		Wishlist struct {
			Items []models.WishlistItem `json:"items"`
		} `json:"wishlist"`
	}

	if err := c.do(ctx, http.MethodGet, "/wishlist/getbycustid", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, ErrServerRefused
	}
	return resp.Wishlist.Items, nil
}

// ClearWishlist vide la liste d'envies côté serveur.
func (c *Client) ClearWishlist(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/wishlist/clear", nil, nil)
}
