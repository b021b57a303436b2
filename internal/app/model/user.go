package model

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin             UserRole = "admin"
	RoleDistributor       UserRole = "distributor"
	RoleMerchant          UserRole = "merchant"
	RolePurchasingManager UserRole = "purchasing_manager"
	RoleFinanceManager    UserRole = "finance_manager"
)

// ValidRole reports whether the given tag is part of the closed role enum.
// Role is assigned once at account creation and never recomputed.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleDistributor, RoleMerchant, RolePurchasingManager, RoleFinanceManager:
		return true
	}
	return false
}

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"` // stored trimmed+lowercased
	PasswordHash string         `gorm:"not null" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Phone        string         `json:"phone"`
	Role         UserRole       `gorm:"type:varchar(30);default:'merchant'" json:"role"`
	Seeded       bool           `gorm:"default:false" json:"-"` // fixed demo account
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
