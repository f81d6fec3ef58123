package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/health-pal-uit/health-pal-server-sub001/controllers"
	"github.com/health-pal-uit/health-pal-server-sub001/middlewares"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Catalog (read open, writes behind auth)
	catalog := r.Group("/catalog")
	{
		catalog.GET("/ingredients", controllers.ListIngredients)
		catalog.GET("/ingredients/:id", controllers.GetIngredient)
		catalog.GET("/meals", controllers.ListMeals)
		catalog.GET("/meals/:id", controllers.GetMeal)
		catalog.GET("/activities", controllers.ListActivities)
	}
	catalogWrite := r.Group("/catalog")
	catalogWrite.Use(middlewares.AuthMiddleware())
	{
		catalogWrite.POST("/ingredients", controllers.CreateIngredient)
		catalogWrite.POST("/meals", controllers.CreateMeal)
		catalogWrite.POST("/activities", controllers.CreateActivity)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	// Daily logging
	logs := r.Group("/log")
	logs.Use(middlewares.AuthMiddleware())
	{
		logs.POST("/ingredients", controllers.LogIngredient)
		logs.DELETE("/ingredients/:id", controllers.DeleteLoggedIngredient)
		logs.POST("/meals", controllers.LogMeal)
		logs.DELETE("/meals/:id", controllers.DeleteLoggedMeal)
		logs.POST("/water", controllers.LogWater)
		logs.POST("/activities", controllers.LogActivity)
		logs.GET("/activities", controllers.ListActivityRecords)
		logs.DELETE("/activities/:id", controllers.DeleteActivityRecord)
	}

	// Daily ledger
	ledger := r.Group("/ledger")
	ledger.Use(middlewares.AuthMiddleware())
	{
		ledger.GET("/today", controllers.GetTodayLedger)
		ledger.GET("", controllers.GetLedgerByDate)
		ledger.GET("/history", controllers.GetLedgerHistory)
	}

	// Daily targets and progress against them
	goals := r.Group("/goals")
	goals.Use(middlewares.AuthMiddleware())
	{
		goals.PUT("", controllers.UpdateGoals)
		goals.GET("", controllers.GetGoals)
		goals.GET("/progress", controllers.GetGoalProgress)
	}

	// Trends over the ledger history
	analytics := r.Group("/analytics")
	analytics.Use(middlewares.AuthMiddleware())
	{
		analytics.GET("/summary", controllers.GetRangeSummary)
		analytics.GET("/weekly", controllers.GetWeeklyOverview)
	}

	// Challenges
	challenges := r.Group("/challenges")
	challenges.Use(middlewares.AuthMiddleware())
	{
		challenges.POST("", controllers.CreateChallenge)
		challenges.GET("", controllers.ListChallenges)
		challenges.POST("/:id/join", controllers.JoinChallenge)
		challenges.GET("/:id/progress", controllers.GetChallengeProgress)
	}

	// Realtime ledger updates
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/ledger", controllers.LedgerWS)
	}

	return r
}
