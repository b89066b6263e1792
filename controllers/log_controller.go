package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Manish9250/calorie-tracker-app/models"
	"github.com/Manish9250/calorie-tracker-app/services"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	logs *services.LogService
}

func NewLogController(logs *services.LogService) *LogController {
	return &LogController{logs: logs}
}

func (lc *LogController) CreateLog(c *gin.Context) {
	var input services.FoodLogRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := lc.logs.Create(c.Param("username"), input)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (lc *LogController) GetLogsByDate(c *gin.Context) {
	day, err := models.ParseDate(c.Param("log_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	entries, err := lc.logs.ListByDate(c.Param("username"), day)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (lc *LogController) DeleteLog(c *gin.Context) {
	logID, err := strconv.ParseUint(c.Param("log_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	err = lc.logs.Delete(c.GetString("username"), uint(logID))
	if errors.Is(err, services.ErrLogNotFound) || errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Log not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Log deleted"})
}
