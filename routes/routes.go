package routes

import (
	"github.com/Manish9250/calorie-tracker-app/controllers"
	"github.com/Manish9250/calorie-tracker-app/middlewares"
	"github.com/Manish9250/calorie-tracker-app/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, ai *services.NutritionAI, staticDir string) *gin.Engine {
	r := gin.Default()

	authController := controllers.NewAuthController(services.NewAuthService(db))
	foodController := controllers.NewFoodController(services.NewFoodService(db, ai))
	logController := controllers.NewLogController(services.NewLogService(db))
	statsController := controllers.NewStatsController(services.NewStatsService(db))

	r.GET("/", controllers.ServeHome(staticDir))

	api := r.Group("/api")
	api.POST("/login", authController.Login)

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.POST("/analyze-and-find-food", foodController.AnalyzeAndFindFood)
		protected.GET("/food-items/:username", foodController.ListFoodItems)
		protected.POST("/log/:username", logController.CreateLog)
		protected.GET("/log/:username/:log_date", logController.GetLogsByDate)
		protected.DELETE("/log/:log_id", logController.DeleteLog)
		protected.GET("/stats/:username/calendar-data", statsController.CalendarData)
	}

	return r
}
