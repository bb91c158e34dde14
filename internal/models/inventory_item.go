package models

import "time"

type InventoryItem struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:255;not null"`
	Category    string    `gorm:"size:100;not null"`
	Quantity    int       `gorm:"not null"`
	Price       float64   `gorm:"not null"`
	Supplier    string    `gorm:"size:255;not null"`
	LastUpdated time.Time `gorm:"autoUpdateTime"`
}
