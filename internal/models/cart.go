package models

// CartItem est une ligne du panier. La clé d'identité est le triplet
// (product_id, color, model) : au plus une ligne par clé, la quantité
// est toujours un entier positif.
type CartItem struct {
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
}

// Key renvoie la clé d'identité de la ligne.
func (i CartItem) Key() CartKey {
	return CartKey{ProductID: i.ProductID, Color: i.Color, Model: i.Model}
}

type CartKey struct {
	ProductID string
	Color     string
	Model     string
}
