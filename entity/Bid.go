package entity

// Bid ของ service provider ต่อ task หนึ่ง — หลาย bid ต่อ task ได้
//
// TaskID/TaskName are a snapshot of the task at submission time; they are not
// kept in sync if the task changes later. JSON keys follow the dashboard
// contract (task, provider, bid), not the column names.
type Bid struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	TaskID        int     `gorm:"not null" json:"task_id"`
	TaskName      string  `gorm:"size:200;not null" json:"task"`
	Department    string  `gorm:"size:100;not null" json:"department"`
	ProviderName  string  `gorm:"size:100;not null" json:"provider"`
	BidPrice      string  `gorm:"size:50;not null" json:"bid"`
	Status        string  `gorm:"size:50;default:pending" json:"status"`
	Resources     *string `gorm:"size:200" json:"resources"`
	Reason        *string `gorm:"size:200" json:"reason"`
	CompletedDate *string `gorm:"size:100" json:"completed_date"`
}
