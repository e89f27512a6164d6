package routes

import (
	"wellbeing/controllers"
	"wellbeing/middlewares"
	"wellbeing/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps is everything the router wires into controllers. Export is optional.
type Deps struct {
	DB        *gorm.DB
	Log       *zap.Logger
	JWTSecret string

	Gratitude *services.GratitudeService
	Happiness *services.HappinessService
	Wellness  *services.WellnessService
	Insights  *services.InsightsService
	Calendar  *services.CalendarService
	Realtime  *services.RealtimeHub
	Export    *services.ExportService
}

func SetupRouter(d Deps) *gin.Engine {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestID(), middlewares.RequestLogger(log), middlewares.Metrics())

	health := controllers.NewHealthController(d.DB)
	r.GET("/healthz", health.Live)
	r.GET("/readyz", health.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	gratitude := controllers.NewGratitudeController(d.Gratitude)
	happiness := controllers.NewHappinessController(d.Happiness)
	wellness := controllers.NewWellnessController(d.Wellness)
	insights := controllers.NewInsightsController(d.Insights)
	calendar := controllers.NewCalendarController(d.Calendar)
	realtime := controllers.NewRealtimeController(d.Realtime)

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(d.JWTSecret))
	{
		api.GET("/gratitudes", gratitude.List)
		api.POST("/gratitudes", gratitude.Save)
		api.DELETE("/gratitudes", gratitude.Delete)
		api.GET("/gratitudes/day", gratitude.ForDay)

		api.GET("/happiness", happiness.Today)
		api.POST("/happiness", happiness.Save)
		api.GET("/happiness/weekly", insights.WeeklyTrend)
		api.GET("/happiness/detractors", insights.DetractorBreakdown)
		api.GET("/happiness/insights", insights.Insights)

		api.GET("/mood-detractors", happiness.Detractors)
		api.POST("/mood-detractors", happiness.SaveDetractors)

		api.GET("/wellness", wellness.Today)
		api.POST("/wellness", wellness.Save)
		api.GET("/wellness/completion", insights.WellnessCompletion)

		api.GET("/stats", insights.Stats)
		api.GET("/calendar", calendar.Range)
		api.GET("/ws", realtime.EventsWS)

		if d.Export != nil {
			api.POST("/export", controllers.NewExportController(d.Export).Export)
		}
	}

	return r
}
