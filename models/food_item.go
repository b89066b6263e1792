package models

import (
	"time"

	"gorm.io/gorm"
)

// A per-user nutrition record. Values are per one serving, where the serving
// is denominated by ServingSizeUnit (e.g. "unit", "100g", "100ml", "slice").
type FoodItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name            string  `gorm:"uniqueIndex:idx_food_items_user_name;not null" json:"name"`
	Calories        float64 `json:"calories"`
	Protein         float64 `json:"protein"`
	Carbs           float64 `json:"carbs"`
	Fat             float64 `json:"fat"`
	Fiber           float64 `json:"fiber"`
	ServingSizeUnit string  `gorm:"default:unit" json:"serving_size_unit"`
	UserID          uint    `gorm:"uniqueIndex:idx_food_items_user_name" json:"user_id"`
}
