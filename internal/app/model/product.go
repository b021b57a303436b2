package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	SKU           string         `gorm:"uniqueIndex;not null" json:"sku"`
	Category      string         `gorm:"type:varchar(100)" json:"category"`
	YourPrice     string         `gorm:"type:varchar(20);not null" json:"your_price"`   // discounted display price, e.g. "$10.00"
	MarketPrice   string         `gorm:"type:varchar(20);not null" json:"market_price"` // undiscounted display price
	Image         string         `gorm:"type:text" json:"image"`
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
