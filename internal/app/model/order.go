package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"

	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID            uint            `gorm:"primarykey" json:"id"`
	OrderNumber   string          `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID        uint            `gorm:"not null;index" json:"user_id"` // placed by
	Status        OrderStatus     `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ApprovedByID  *uint           `gorm:"index" json:"approved_by_id,omitempty"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);default:'unpaid'" json:"payment_status"`
	PaymentMethod string          `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	DeliveredOn   *time.Time      `json:"delivered_on,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	User       User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ApprovedBy *User       `gorm:"foreignKey:ApprovedByID" json:"approved_by,omitempty"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// ItemCount is the total quantity across all line items
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.OrderItems {
		count += item.Quantity
	}
	return count
}

type OrderItem struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	SKU       string          `gorm:"type:varchar(60)" json:"sku"`
	Size      string          `gorm:"type:varchar(30)" json:"size"`
	Color     string          `gorm:"type:varchar(30)" json:"color"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
