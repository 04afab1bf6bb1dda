package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/hard75/internal/api/http/handler"
	"github.com/dtroode/hard75/internal/api/http/middleware"
	"github.com/dtroode/hard75/internal/logger"
	"github.com/dtroode/hard75/internal/model"
)

// Options configures the routes that depend on deployment settings.
type Options struct {
	CronSecret     string
	CookieName     string
	RequestTimeout time.Duration
	PhotoMaxBytes  int64
}

// Router wires handlers and middleware into a gin engine.
type Router struct {
	streakService    handler.StreakService
	profileService   ProfileService
	paymentService   handler.PaymentService
	dashboardService handler.DashboardService
	photoService     handler.PhotoService
	pinger           handler.Pinger
	tokenManager     model.TokenManager
	contextManager   model.ContextManager
	options          Options
	logger           *logger.Logger
}

// ProfileService backs both the session handler and the paid gate.
type ProfileService interface {
	handler.ProfileService
	middleware.PaymentChecker
}

// New creates a Router. photoService may be nil, which leaves the photo
// routes unregistered.
func New(
	streakService handler.StreakService,
	profileService ProfileService,
	paymentService handler.PaymentService,
	dashboardService handler.DashboardService,
	photoService handler.PhotoService,
	pinger handler.Pinger,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	options Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		streakService:    streakService,
		profileService:   profileService,
		paymentService:   paymentService,
		dashboardService: dashboardService,
		photoService:     photoService,
		pinger:           pinger,
		tokenManager:     tokenManager,
		contextManager:   contextManager,
		options:          options,
		logger:           logger,
	}
}

// Register builds the engine with every route and middleware.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.NewLogging(r.logger).Handle(),
		middleware.Timeout(r.options.RequestTimeout),
	)
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	engine.GET("/health", handler.NewHealth(r.pinger, r.logger).Check)

	api := engine.Group("/api")
	r.registerCronRoutes(api)
	r.registerWebhookRoutes(api)

	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.options.CookieName, r.logger)
	session := api.Group("", authenticate.Handle())
	r.registerSessionRoutes(session)

	paid := session.Group("", middleware.NewRequirePaid(r.profileService, r.contextManager).Handle())
	r.registerPaidRoutes(paid)

	return engine
}

func (r *Router) registerCronRoutes(api *gin.RouterGroup) {
	sweep := handler.NewSweep(r.streakService, r.logger)
	cron := middleware.NewCronSecret(r.options.CronSecret, r.logger)
	api.GET("/reset-streak", cron.Handle(), sweep.Reset)
	api.POST("/reset-streak", cron.Handle(), sweep.Reset)
}

func (r *Router) registerWebhookRoutes(api *gin.RouterGroup) {
	payment := handler.NewPayment(r.paymentService, r.logger)
	api.POST("/webhook/payment", payment.Webhook)
}

func (r *Router) registerSessionRoutes(group *gin.RouterGroup) {
	task := handler.NewTask(r.streakService, r.contextManager, r.logger)
	profile := handler.NewProfile(r.profileService, r.streakService, r.contextManager, r.logger)

	group.POST("/session", profile.Session)
	group.POST("/complete-task", task.Complete)
	group.POST("/save-profile", profile.Save)
}

func (r *Router) registerPaidRoutes(group *gin.RouterGroup) {
	dashboard := handler.NewDashboard(r.dashboardService, r.contextManager, r.logger)
	group.GET("/dashboard", dashboard.Get)
	group.GET("/history", dashboard.History)

	if r.photoService == nil {
		return
	}
	photo := handler.NewPhoto(r.photoService, r.contextManager, r.options.PhotoMaxBytes, r.logger)
	group.PUT("/progress-photo", photo.Upload)
	group.GET("/progress-photo/:date", photo.Download)
}
