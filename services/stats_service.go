package services

import (
	"github.com/Manish9250/calorie-tracker-app/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type dailyCalories struct {
	LogDate       models.Date
	TotalCalories *float64
}

// CalendarData sums calories per calendar day across all of a user's logs
// (quantity times the item's per-serving calories). Days with no logs are
// absent from the map, not zero.
func (s *StatsService) CalendarData(username string) (map[string]float64, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	var rows []dailyCalories
	err = s.db.Model(&models.FoodLog{}).
		Select("food_logs.date AS log_date, SUM(food_logs.quantity * food_items.calories) AS total_calories").
		Joins("JOIN food_items ON food_items.id = food_logs.food_item_id").
		Where("food_logs.user_id = ?", user.ID).
		Group("food_logs.date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	data := make(map[string]float64, len(rows))
	for _, row := range rows {
		if row.TotalCalories == nil {
			continue
		}
		data[row.LogDate.String()] = *row.TotalCalories
	}
	return data, nil
}
