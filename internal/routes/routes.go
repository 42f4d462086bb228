package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/izlekapp/izlek_backend_v1/internal/auth"
	"github.com/izlekapp/izlek_backend_v1/internal/config"
	"github.com/izlekapp/izlek_backend_v1/internal/controllers"
	"github.com/izlekapp/izlek_backend_v1/internal/middleware"
	"github.com/izlekapp/izlek_backend_v1/internal/services"
	"github.com/izlekapp/izlek_backend_v1/internal/store"
)

// Register wires the whole API surface under /api onto r, persisting
// through gw.
func Register(r *gin.Engine, gw store.Gateway, cfg *config.Config) {
	r.Use(cors.New(corsConfig(cfg)))

	profileCtrl := &controllers.ProfileController{Service: &services.ProfileService{Store: gw}}
	programCtrl := &controllers.ProgramController{Service: &services.ProgramService{Store: gw}}
	roomCtrl := &controllers.RoomController{Service: &services.RoomService{Store: gw}}
	messageCtrl := &controllers.MessageController{Service: &services.MessageService{Store: gw}}
	examCtrl := &controllers.ExamController{Service: services.NewExamService(gw)}
	statusCtrl := &controllers.StatusController{Service: &services.StatusService{Store: gw}}

	// Identity for the exam endpoints: trust the uid header unless a JWT
	// secret is configured, in which case tokens are verified instead.
	var identity auth.Provider = auth.HeaderProvider{}
	if cfg.AuthJWTSecret != "" {
		identity = auth.JWTProvider{Secret: cfg.AuthJWTSecret}
	}

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "İzlek API"})
		})

		api.POST("/status", statusCtrl.Create)
		api.GET("/status", statusCtrl.List)

		api.POST("/profiles", profileCtrl.Create)
		api.GET("/profiles/:id", profileCtrl.Get)
		api.GET("/profiles/by-firebase-uid/:firebase_uid", profileCtrl.GetByFirebaseUID)

		api.POST("/programs", programCtrl.Create)
		api.GET("/programs/:profile_id", programCtrl.ListByProfile)
		api.PUT("/programs/:id", programCtrl.Update)
		api.DELETE("/programs/:id", programCtrl.Delete)

		api.POST("/rooms", roomCtrl.Create)
		api.POST("/rooms/join", roomCtrl.Join)
		api.GET("/rooms/:id", roomCtrl.Get)
		api.GET("/rooms/code/:code", roomCtrl.GetByCode)
		api.PUT("/rooms/:id/timer", roomCtrl.UpdateTimer)

		api.POST("/messages", messageCtrl.Create)
		api.GET("/messages/:room_id", messageCtrl.ListByRoom)

		exams := api.Group("/exams", middleware.Identity(identity))
		{
			exams.POST("", examCtrl.Create)
			exams.GET("", examCtrl.List)
		}
	}
}

// corsConfig builds the CORS policy from the configured allow-list. An
// empty list means the development default: every origin allowed, without
// credentials.
func corsConfig(cfg *config.Config) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", auth.UIDHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        time.Hour,
	}
	if len(cfg.CORSOrigins) > 0 {
		cc.AllowOrigins = cfg.CORSOrigins
		cc.AllowCredentials = true
	} else {
		cc.AllowAllOrigins = true
	}
	return cc
}
