package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "unpaid"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice is generated when an order is approved; Net-30 terms by default.
type Invoice struct {
	ID            uint            `gorm:"primarykey" json:"id"`
	InvoiceNumber string          `gorm:"uniqueIndex;not null" json:"invoice_number"`
	OrderID       uint            `gorm:"uniqueIndex;not null" json:"order_id"`
	UserID        uint            `gorm:"not null;index" json:"user_id"` // placed by
	ItemCount     int             `gorm:"not null" json:"item_count"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Status        InvoiceStatus   `gorm:"type:varchar(20);default:'unpaid';index" json:"status"`
	IssuedAt      time.Time       `json:"issued_at"`
	DueAt         time.Time       `gorm:"index" json:"due_at"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	Order Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Invoice) TableName() string {
	return "invoices"
}
