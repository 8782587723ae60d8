package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"planhub/internal/config"
	"planhub/internal/middleware"
	"planhub/pkg/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Server represents the HTTP server
type Server struct {
	cfg   *config.Config
	mongo *mongo.Client
	http  *http.Server
}

// New connects to MongoDB and wires repositories, services, handlers and
// routes into a ready-to-run server.
func New(cfg *config.Config) (*Server, error) {
	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}

	repos := InitRepositories(db)
	services := InitServices(repos, tokens)
	handlers := InitHandlers(services)

	router := setupRouter(handlers, services, tokens)

	return &Server{
		cfg:   cfg,
		mongo: mongoClient,
		http: &http.Server{
			Addr:    cfg.Server.Address(),
			Handler: router,
		},
	}, nil
}

// Connect establishes and verifies the MongoDB connection
func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Run starts serving until Shutdown is called
func (s *Server) Run() error {
	logrus.WithField("addr", s.cfg.Server.Address()).Info("server listening")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and disconnects MongoDB
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return err
	}
	if s.mongo != nil {
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

func setupRouter(h *Handlers, services *Services, tokens *auth.TokenManager) *gin.Engine {
	r := gin.Default()
	if err := r.SetTrustedProxies(nil); err != nil {
		logrus.WithError(err).Warn("failed to clear trusted proxies")
	}
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Project Management Assistant API is running!"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(tokens, services.Users), h.Auth.Me)
	}

	projects := r.Group("/projects")
	{
		projects.POST("", h.Projects.Create)
		projects.GET("", h.Projects.List)
		projects.GET("/:id", h.Projects.Get)
		projects.PUT("/:id", h.Projects.Update)
		projects.DELETE("/:id", h.Projects.Delete)
	}

	tasks := r.Group("/tasks")
	{
		tasks.POST("", h.Tasks.Create)
		tasks.GET("", h.Tasks.List)
		tasks.GET("/:id", h.Tasks.Get)
		tasks.PUT("/:id", h.Tasks.Update)
		tasks.DELETE("/:id", h.Tasks.Delete)
		tasks.GET("/:id/time-summary", h.Tasks.TimeSummary)
	}

	members := r.Group("/members")
	{
		members.POST("", h.Members.Create)
		members.GET("", h.Members.List)
		members.GET("/:id", h.Members.Get)
		members.PUT("/:id", h.Members.Update)
		members.DELETE("/:id", h.Members.Delete)
	}

	timeLogs := r.Group("/time_logs")
	{
		timeLogs.POST("", h.TimeLogs.Create)
		timeLogs.GET("", h.TimeLogs.List)
		timeLogs.GET("/:id", h.TimeLogs.Get)
		timeLogs.PUT("/:id", h.TimeLogs.Update)
		timeLogs.DELETE("/:id", h.TimeLogs.Delete)
	}

	r.GET("/assignment/workload/:member_id", h.Assignments.Workload)

	return r
}
