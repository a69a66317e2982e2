package entity

import (
	"time"
)

// Issue คือปัญหาที่ resident รายงานเข้ามา
type Issue struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Type        string    `gorm:"size:50;not null" json:"type"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	Department  *string   `gorm:"size:50" json:"department"` // nil เมื่อ type ไม่ตรงกับ department ไหนเลย
	Status      string    `gorm:"size:20;not null;default:open" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
