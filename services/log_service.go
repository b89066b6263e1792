package services

import (
	"github.com/Manish9250/calorie-tracker-app/models"

	"gorm.io/gorm"
)

type LogService struct {
	db *gorm.DB
}

func NewLogService(db *gorm.DB) *LogService {
	return &LogService{db: db}
}

type FoodLogRequest struct {
	Date       models.Date `json:"date" binding:"required"`
	MealType   string      `json:"meal_type" binding:"required"`
	Quantity   float64     `json:"quantity"`
	FoodItemID uint        `json:"food_item_id" binding:"required"`
}

// Create persists a log row for the user. The food item id is taken as given;
// a reference to a missing item surfaces later as an empty embedded item.
func (s *LogService) Create(username string, req FoodLogRequest) (*models.FoodLog, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	entry := models.FoodLog{
		Date:       req.Date,
		MealType:   req.MealType,
		Quantity:   req.Quantity,
		UserID:     user.ID,
		FoodItemID: req.FoodItemID,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	// reload with the embedded item
	var populated models.FoodLog
	if err := s.db.Preload("FoodItem").First(&populated, entry.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

// ListByDate returns the user's logs for one calendar day, embedded items
// included. No logs is an empty slice, not an error.
func (s *LogService) ListByDate(username string, day models.Date) ([]models.FoodLog, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	logs := []models.FoodLog{}
	err = s.db.Preload("FoodItem").
		Where("user_id = ? AND date = ?", user.ID, day).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// Delete removes one log by id, scoped to the calling user.
func (s *LogService) Delete(username string, logID uint) error {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return err
	}

	result := s.db.Where("user_id = ?", user.ID).Delete(&models.FoodLog{}, logID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}
