package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kairos-ukr/ses-sub000/internal/config"
	"github.com/kairos-ukr/ses-sub000/internal/handlers"
	"github.com/kairos-ukr/ses-sub000/internal/middleware"
)

func Register(router *gin.Engine, db *gorm.DB, cfg config.Config) {
	router.Use(corsMiddleware(cfg.AllowedOriginsRaw))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "ses-sub000"})
	})

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := handlers.NewAuthHandler(db, cfg)
	employeeHandler := handlers.NewEmployeeHandler(db)
	installationHandler := handlers.NewInstallationHandler(db)
	timeOffHandler := handlers.NewTimeOffHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthRequired(cfg.JwtSecret))
	{
		protected.GET("/me", authHandler.Me)
		protected.GET("/dashboard", dashboardHandler.Get)

		protected.GET("/employees", employeeHandler.List)
		protected.POST("/employees", middleware.RequireAnyRole("admin", "manager"), employeeHandler.Create)
		protected.PUT("/employees/:id", middleware.RequireAnyRole("admin", "manager"), employeeHandler.Update)
		protected.DELETE("/employees/:id", middleware.RequireAnyRole("admin"), employeeHandler.Delete)

		protected.GET("/installations", installationHandler.List)
		protected.POST("/installations", middleware.RequireAnyRole("admin", "manager"), installationHandler.Create)
		protected.PUT("/installations/:id", middleware.RequireAnyRole("admin", "manager"), installationHandler.Update)

		protected.GET("/timeoff", middleware.RequireAnyRole("admin", "manager", "crew"), timeOffHandler.List)
		protected.POST("/timeoff", middleware.RequireAnyRole("admin", "manager"), timeOffHandler.Create)
		protected.DELETE("/timeoff/:id", middleware.RequireAnyRole("admin", "manager"), timeOffHandler.Delete)

		protected.GET("/schedule", middleware.RequireAnyRole("admin", "manager", "crew"), scheduleHandler.GetWeek)
		protected.GET("/schedule/:date/available", middleware.RequireAnyRole("admin", "manager", "crew"), scheduleHandler.AvailableWorkers)
		protected.PUT("/schedule/:date", middleware.RequireAnyRole("admin", "manager"), scheduleHandler.SaveDay)
		protected.POST("/schedule/:date/cancel", middleware.RequireAnyRole("admin", "manager"), scheduleHandler.CancelJob)
	}
}

func corsMiddleware(allowed string) gin.HandlerFunc {
	origins := []string{}
	for _, origin := range strings.Split(allowed, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	allowAll := len(origins) == 0

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			for _, allowedOrigin := range origins {
				if origin == allowedOrigin {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					c.Writer.Header().Set("Vary", "Origin")
					break
				}
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
