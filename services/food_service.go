package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Manish9250/calorie-tracker-app/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
	ai *NutritionAI
}

func NewFoodService(db *gorm.DB, ai *NutritionAI) *FoodService {
	return &FoodService{db: db, ai: ai}
}

// FoodResolution is the outcome of resolving a free-text description to a
// concrete food item. New reports whether the item was created by this call.
type FoodResolution struct {
	Item     models.FoodItem `json:"item"`
	Quantity float64         `json:"quantity"`
	New      bool            `json:"new"`
}

var massVolumeUnits = map[string]bool{
	"ml":    true,
	"g":     true,
	"gram":  true,
	"grams": true,
}

// NormalizeQuantity re-expresses a quantity as a multiple of the serving the
// nutrition values will be recorded against. Mass and volume servings are
// denominated per 100 units, so 500ml becomes 5.0 servings of "100ml".
func NormalizeQuantity(quantity float64, unit string) (float64, string) {
	if massVolumeUnits[unit] {
		label := "100" + strings.ReplaceAll(strings.ReplaceAll(unit, "gram", "g"), "s", "")
		return quantity / 100.0, label
	}
	return quantity, unit
}

// AnalyzeAndFind converts a description like "2 slices of pepperoni pizza"
// into an owned food item plus a normalized quantity, asking the model for
// nutrition facts when the item has not been seen for this user before.
func (s *FoodService) AnalyzeAndFind(ctx context.Context, username, description string) (*FoodResolution, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	parsed, err := s.ai.ParseDescription(ctx, description)
	if err != nil {
		return nil, err
	}
	quantity, servingUnit := NormalizeQuantity(parsed.Quantity, parsed.Unit)

	var item models.FoodItem
	err = s.db.Where("user_id = ? AND name = ?", user.ID, parsed.ItemName).First(&item).Error
	if err == nil {
		return &FoodResolution{Item: item, Quantity: quantity}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	facts, err := s.ai.EstimateNutrition(ctx, parsed.ItemName)
	if err != nil {
		return nil, err
	}

	// Names are stored lower-cased so the exact-match lookup above keeps
	// resolving to the same row on later calls.
	item = models.FoodItem{
		Name:            strings.ToLower(facts.Name),
		Calories:        facts.Calories,
		Protein:         facts.Protein,
		Carbs:           facts.Carbs,
		Fat:             facts.Fat,
		Fiber:           facts.Fiber,
		ServingSizeUnit: servingUnit,
		UserID:          user.ID,
	}
	if err := s.db.Create(&item).Error; err != nil {
		// A concurrent identical request may have won the (user_id, name)
		// unique index; hand back the winning row.
		var existing models.FoodItem
		if lookupErr := s.db.Where("user_id = ? AND name = ?", user.ID, item.Name).First(&existing).Error; lookupErr == nil {
			return &FoodResolution{Item: existing, Quantity: quantity}, nil
		}
		return nil, err
	}
	return &FoodResolution{Item: item, Quantity: quantity, New: true}, nil
}

// ListByUser returns a user's food items ordered by name.
func (s *FoodService) ListByUser(username string) ([]models.FoodItem, error) {
	user, err := findUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	items := []models.FoodItem{}
	if err := s.db.Where("user_id = ?", user.ID).Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
