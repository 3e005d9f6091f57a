package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mohsinshafique7/clays-notes-backend/controllers"
	"github.com/mohsinshafique7/clays-notes-backend/middlewares"
)

func SetupRouter(
	accountCtl *controllers.AccountController,
	recordCtl *controllers.SleepRecordController,
	noteCtl *controllers.NoteController,
	logger *zap.SugaredLogger,
) *gin.Engine {
	controllers.RegisterValidations()

	r := gin.New()
	r.Use(middlewares.RequestLogger(logger), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	accounts := r.Group("/accounts")
	{
		accounts.POST("", accountCtl.Create)
		accounts.GET("", accountCtl.FindAll)
		accounts.GET("/:id", accountCtl.FindOne)
		accounts.PATCH("/:id", accountCtl.Update)
		accounts.DELETE("/:id", accountCtl.Delete)
	}

	records := r.Group("/sleep-records")
	{
		records.POST("", recordCtl.Create)
		records.GET("", recordCtl.FindAll)
		records.GET("/last-seven/:id", recordCtl.LastSevenDays)
		records.GET("/:id", recordCtl.FindOne)
		records.PATCH("/:id", recordCtl.Update)
		records.DELETE("/:id", recordCtl.Delete)
	}

	notes := r.Group("/notes")
	{
		notes.POST("", noteCtl.Create)
		notes.GET("", noteCtl.FindAll)
		notes.GET("/:id", noteCtl.FindOne)
		notes.PATCH("/:id", noteCtl.Update)
		notes.DELETE("/:id", noteCtl.Delete)
	}

	return r
}
