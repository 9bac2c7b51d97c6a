package model

import "time"

// Store represents a listed store that users can rate.
type Store struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	Email     string    `json:"email,omitempty" gorm:"size:255"`
	Address   string    `json:"address,omitempty" gorm:"size:400"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Ratings []Rating `json:"ratings,omitempty" gorm:"foreignKey:StoreID"`
}
