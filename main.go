package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"learning-service/internal/config"
	"learning-service/internal/db"
	"learning-service/internal/event"
	"learning-service/internal/handlers"
	"learning-service/internal/repository"
	"learning-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.New()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoURI)
	defer db.Disconnect()

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	database := db.Client.Database(cfg.MongoDatabase)

	// Repositories
	questionRepo := repository.NewQuestionRepository(database)
	subcategoryRepo := repository.NewSubcategoryRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	attemptRepo := repository.NewAttemptRepository(database)

	// The ledger's (user, question, mode) uniqueness is index-backed.
	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := progressRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("Failed to create progress indexes: %v", err)
	}
	cancel()

	// Services
	catalogService := service.NewCatalogService(questionRepo, subcategoryRepo)
	questionService := service.NewQuestionService(questionRepo, subcategoryRepo)
	learnService := service.NewLearnService(catalogService, progressRepo)
	testService := service.NewTestService(attemptRepo, catalogService, progressRepo)
	statsService := service.NewStatsService(questionRepo, subcategoryRepo, progressRepo)

	// Handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	learnHandler := handlers.NewLearnHandler(learnService)
	testHandler := handlers.NewTestHandler(testService)
	statsHandler := handlers.NewStatsHandler(statsService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "X-User-ID", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public catalog routes
	publicCatalog := r.Group("/public/learning/catalog")
	{
		publicCatalog.GET("/subcategory", catalogHandler.ListEnabledSubcategories)
		publicCatalog.GET("/subcategory/:id", catalogHandler.GetSubcategory)
		publicCatalog.GET("/category/:categoryId/subcategories", catalogHandler.ListSubcategoriesByCategory)
		publicCatalog.GET("/subcategory/:id/questions", catalogHandler.ListQuestions)
	}

	// Admin question management
	adminQuestion := r.Group("/protected/learning/question")
	adminQuestion.Use(requireUser())
	{
		adminQuestion.GET("/:id", questionHandler.GetQuestion)
		adminQuestion.POST("/", questionHandler.CreateQuestion)
		adminQuestion.PUT("/:id", questionHandler.UpdateQuestion)
		adminQuestion.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	adminCatalog := r.Group("/protected/learning/catalog")
	adminCatalog.Use(requireUser())
	{
		adminCatalog.POST("/subcategory", catalogHandler.CreateSubcategory)
	}

	setupLearnRoutes(r, learnHandler, publisher)
	setupTestRoutes(r, testHandler, publisher)
	setupStatsRoutes(r, statsHandler, publisher)

	r.Run(":" + cfg.Port)
}

// requireUser rejects requests without the gateway-supplied identity. The
// service trusts the header value as given.
func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func setupLearnRoutes(r *gin.Engine, learnHandler *handlers.LearnHandler, publisher *event.EventPublisher) {
	learn := r.Group("/protected/learning/learn")
	learn.Use(requireUser())
	{
		// Fresh queue; clients re-fetch every few submissions to pick up
		// newly changed buckets.
		learn.GET("/:subcategoryId/queue", func(c *gin.Context) {
			learnHandler.GetQueue(c)
			if publisher != nil {
				publisher.Publish("learn.queue.fetched", gin.H{
					"subcategory_id": c.Param("subcategoryId"),
					"user_id":        c.GetHeader("X-User-ID"),
				})
			}
		})

		learn.POST("/answer", func(c *gin.Context) {
			learnHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("learn.answer.submitted", gin.H{
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})
	}
}

func setupTestRoutes(r *gin.Engine, testHandler *handlers.TestHandler, publisher *event.EventPublisher) {
	test := r.Group("/protected/learning/test")
	test.Use(requireUser())
	{
		test.POST("/", func(c *gin.Context) {
			testHandler.StartAttempt(c)
			if publisher != nil {
				publisher.Publish("test.attempt.started", gin.H{
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})

		test.GET("/:id", testHandler.GetAttempt)
		test.GET("/:id/question", testHandler.CurrentQuestion)

		test.POST("/:id/answer", func(c *gin.Context) {
			testHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("test.answer.submitted", gin.H{
					"attempt_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
				})
			}
		})

		// "end test" and timer expiry share this transition
		test.POST("/:id/end", func(c *gin.Context) {
			testHandler.EndAttempt(c)
			if publisher != nil {
				publisher.Publish("test.attempt.ended", gin.H{
					"attempt_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
				})
			}
		})

		test.GET("/:id/review", testHandler.Review)
	}
}

func setupStatsRoutes(r *gin.Engine, statsHandler *handlers.StatsHandler, publisher *event.EventPublisher) {
	stats := r.Group("/protected/learning/stats")
	stats.Use(requireUser())
	{
		stats.GET("/overall", func(c *gin.Context) {
			statsHandler.Overall(c)
			if publisher != nil {
				publisher.Publish("progress.overall_checked", gin.H{
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})

		stats.GET("/subcategory/:subcategoryId", statsHandler.Subcategory)
		stats.GET("/subcategory/:subcategoryId/records", statsHandler.Records)
	}
}
