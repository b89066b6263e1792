package controllers

import (
	"errors"
	"net/http"

	"github.com/Manish9250/calorie-tracker-app/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

func (sc *StatsController) CalendarData(c *gin.Context) {
	data, err := sc.stats.CalendarData(c.Param("username"))
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.WithError(err).WithField("username", c.Param("username")).Error("failed to fetch calendar data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}
