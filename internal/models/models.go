package models

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID            string           `gorm:"primaryKey"            json:"id"`
	Name          string           `gorm:"not null"              json:"name"`
	Price         decimal.Decimal  `gorm:"type:numeric;not null" json:"price"`
	OriginalPrice *decimal.Decimal `gorm:"type:numeric"          json:"original_price,omitempty"`
	Image         string           `json:"image"`
	HoverImage    string           `json:"hover_image,omitempty"`
	Category      string           `gorm:"index;not null"        json:"category"`
	IsNew         bool             `json:"is_new"`
	IsBestseller  bool             `json:"is_bestseller"`
	Description   string           `json:"description,omitempty"`
	Material      string           `json:"material,omitempty"`
	Care          string           `json:"care,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// CartItem is one line of a session cart. It lives in memory only and is
// never persisted; Product is a copy taken from the catalog at add time.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size,omitempty"`
}
