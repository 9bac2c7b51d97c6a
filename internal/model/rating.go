package model

import "time"

// Rating is one user's rating of one store. The composite primary key keeps
// at most one row per (user, store) pair; resubmission overwrites Value.
type Rating struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	StoreID   uint      `json:"store_id" gorm:"primaryKey;autoIncrement:false;index"`
	Value     int       `json:"rating" gorm:"column:rating;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
