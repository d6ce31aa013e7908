package models

// Product est la vue client d'un produit, telle que renvoyée par l'API
// backend. Les variantes sont imbriquées : modèles → couleurs → images.
type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Price         float64        `json:"price"`
	OriginalPrice float64        `json:"original_price,omitempty"`
	Stock         int            `json:"stock"`
	Category      string         `json:"category,omitempty"`
	Image         string         `json:"image,omitempty"`
	Images        []string       `json:"images,omitempty"`
	HasVariants   bool           `json:"has_variants,omitempty"`
	Models        []VariantModel `json:"models,omitempty"`
}

type VariantModel struct {
	ID     string         `json:"model_id"`
	Name   string         `json:"name"`
	Colors []VariantColor `json:"colors,omitempty"`
}

type VariantColor struct {
	ID            string   `json:"color_id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price,omitempty"`
	Stock         int      `json:"stock"`
	Images        []string `json:"images,omitempty"`
}
