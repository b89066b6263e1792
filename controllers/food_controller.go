package controllers

import (
	"errors"
	"net/http"

	"github.com/Manish9250/calorie-tracker-app/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

type FoodAnalysisInput struct {
	Description string `json:"description" binding:"required"`
	Username    string `json:"username" binding:"required"`
}

func (fc *FoodController) AnalyzeAndFindFood(c *gin.Context) {
	var input FoodAnalysisInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Username != c.GetString("username") {
		c.JSON(http.StatusForbidden, gin.H{"error": "token does not match requested user"})
		return
	}

	resolution, err := fc.foods.AnalyzeAndFind(c.Request.Context(), input.Username, input.Description)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.WithError(err).WithField("username", input.Username).Warn("food analysis failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resolution)
}

func (fc *FoodController) ListFoodItems(c *gin.Context) {
	items, err := fc.foods.ListByUser(c.Param("username"))
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}
