package entity

import (
	"time"
)

type Task struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"type:text;not null" json:"description"`
	Department  string `gorm:"size:50;not null" json:"department"`
	Resources   string `gorm:"type:text;not null" json:"resources"`
	Timeline    string `gorm:"size:100;not null" json:"timeline"`
	// The legacy schema declares "Available" as the column default; the create
	// path always writes "active", so the default never reaches a row.
	Status    string    `gorm:"size:20;not null;default:Available" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
