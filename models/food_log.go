package models

import (
	"time"

	"gorm.io/gorm"
)

// One dated entry of a quantity of a food item eaten by a user. Quantity is a
// multiplier against the item's serving size unit, normalized by the caller
// (e.g. 500ml against a "100ml" serving is stored as 5.0).
type FoodLog struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Date     Date    `gorm:"type:date;index" json:"date"`
	MealType string  `json:"meal_type"` // breakfast/lunch/dinner/..., free text
	Quantity float64 `gorm:"default:1" json:"quantity"`

	UserID     uint     `gorm:"index" json:"user_id"`
	FoodItemID uint     `json:"food_item_id"`
	FoodItem   FoodItem `json:"food_item"`
}
