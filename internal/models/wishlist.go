package models

// WishlistItem est une entrée de la liste d'envies. La clé d'identité
// est le triplet (product_id, model_id, color_id) — le test
// d'appartenance compare toujours les trois champs, jamais product_id seul.
type WishlistItem struct {
	ProductID string  `json:"product_id"`
	ModelID   *string `json:"model_id"`
	ColorID   *string `json:"color_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
}

// Key renvoie la clé d'identité de l'entrée.
func (i WishlistItem) Key() WishlistKey {
	return WishlistKey{
		ProductID: i.ProductID,
		ModelID:   deref(i.ModelID),
		ColorID:   deref(i.ColorID),
	}
}

type WishlistKey struct {
	ProductID string
	ModelID   string
	ColorID   string
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
