package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Manish9250/calorie-tracker-app/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedFoodItem(t *testing.T, db *gorm.DB, username, name string, calories float64) models.FoodItem {
	t.Helper()
	var user models.User
	require.NoError(t, db.Where("username = ?", username).First(&user).Error)
	item := models.FoodItem{Name: name, Calories: calories, ServingSizeUnit: "unit", UserID: user.ID}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestCreateAndListLog(t *testing.T) {
	r, db := newTestServer(t, &fakeGenerator{})
	token := login(t, r, "alice", "secret")
	item := seedFoodItem(t, db, "alice", "boiled egg", 78)

	w := doJSON(t, r, http.MethodPost, "/api/log/alice", token, gin.H{
		"date":         "2025-03-10",
		"meal_type":    "breakfast",
		"quantity":     2.0,
		"food_item_id": item.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.FoodLog
	decodeBody(t, w, &created)
	assert.Equal(t, "breakfast", created.MealType)
	assert.Equal(t, "2025-03-10", created.Date.String())
	assert.Equal(t, item.ID, created.FoodItem.ID)
	assert.Equal(t, "boiled egg", created.FoodItem.Name)

	w = doJSON(t, r, http.MethodGet, "/api/log/alice/2025-03-10", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []models.FoodLog
	decodeBody(t, w, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, created.ID, entries[0].ID)
	assert.Equal(t, "boiled egg", entries[0].FoodItem.Name)

	// a day with no logs is an empty list, not an error
	w = doJSON(t, r, http.MethodGet, "/api/log/alice/2025-03-11", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries = nil
	decodeBody(t, w, &entries)
	assert.Empty(t, entries)
}

func TestGetLogsRejectsBadDate(t *testing.T) {
	r, _ := newTestServer(t, &fakeGenerator{})
	token := login(t, r, "alice", "secret")

	w := doJSON(t, r, http.MethodGet, "/api/log/alice/not-a-date", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteLog(t *testing.T) {
	r, db := newTestServer(t, &fakeGenerator{})
	token := login(t, r, "alice", "secret")
	item := seedFoodItem(t, db, "alice", "apple", 95)

	w := doJSON(t, r, http.MethodPost, "/api/log/alice", token, gin.H{
		"date":         "2025-03-10",
		"meal_type":    "snack",
		"quantity":     1.0,
		"food_item_id": item.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.FoodLog
	decodeBody(t, w, &created)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/log/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Log deleted", body["message"])

	var count int64
	require.NoError(t, db.Model(&models.FoodLog{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeleteMissingLogLeavesTableUnchanged(t *testing.T) {
	r, db := newTestServer(t, &fakeGenerator{})
	token := login(t, r, "alice", "secret")
	item := seedFoodItem(t, db, "alice", "apple", 95)

	w := doJSON(t, r, http.MethodPost, "/api/log/alice", token, gin.H{
		"date":         "2025-03-10",
		"meal_type":    "snack",
		"quantity":     1.0,
		"food_item_id": item.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/log/99999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.FoodLog{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteOtherUsersLog(t *testing.T) {
	r, db := newTestServer(t, &fakeGenerator{})
	aliceToken := login(t, r, "alice", "secret")
	bobToken := login(t, r, "bob", "hunter2")
	item := seedFoodItem(t, db, "alice", "apple", 95)

	w := doJSON(t, r, http.MethodPost, "/api/log/alice", aliceToken, gin.H{
		"date":         "2025-03-10",
		"meal_type":    "snack",
		"quantity":     1.0,
		"food_item_id": item.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.FoodLog
	decodeBody(t, w, &created)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/log/%d", created.ID), bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.FoodLog{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "another user's log must survive")
}
