package model

import "time"

// Resource is a read-only help-center entry, seeded at startup
type Resource struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Category  string    `gorm:"type:varchar(60)" json:"category"`
	URL       string    `gorm:"type:text" json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

func (Resource) TableName() string {
	return "resources"
}
