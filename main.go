package main

import (
	"context"
	"log"
	"time"

	"github.com/bhosaleparag/tution-platform-sub000/internal/config"
	"github.com/bhosaleparag/tution-platform-sub000/internal/db"
	"github.com/bhosaleparag/tution-platform-sub000/internal/event"
	"github.com/bhosaleparag/tution-platform-sub000/internal/handlers"
	"github.com/bhosaleparag/tution-platform-sub000/internal/repository"
	"github.com/bhosaleparag/tution-platform-sub000/internal/service"
	"github.com/bhosaleparag/tution-platform-sub000/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Init(cfg.Server.Mode)
	defer logger.Log.Sync()

	client, err := db.Connect(context.Background(), cfg.Mongo.URI)
	if err != nil {
		logger.Log.Fatal("mongo connect failed", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	database := client.Database(cfg.Mongo.Database)

	var publisher *event.Publisher
	if cfg.Rabbit.URI != "" {
		publisher, err = event.NewPublisher(cfg.Rabbit.URI, cfg.Rabbit.Exchange)
		if err != nil {
			logger.Log.Fatal("rabbitmq connect failed", zap.Error(err))
		}
		defer publisher.Close()
	} else {
		logger.Log.Info("rabbitmq not configured, lifecycle events will not be published")
	}

	quizRepo := repository.NewQuizRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	attemptRepo := repository.NewAttemptRepository(database)
	txn := repository.NewTxnRunner(client)

	// A nil *Publisher must stay a nil interface for the services.
	var events service.EventSink
	if publisher != nil {
		events = publisher
	}

	quizService := service.NewQuizService(quizRepo, questionRepo, attemptRepo, txn, events)
	attemptService := service.NewAttemptService(quizRepo, questionRepo, attemptRepo, events).
		WithLeaderboardSize(cfg.Engine.LeaderboardSize)
	resultService := service.NewResultService(quizRepo, attemptRepo).
		WithPassMark(cfg.Engine.PassMarkPercent)

	quizHandler := handlers.NewQuizHandler(quizService)
	attemptHandler := handlers.NewAttemptHandler(attemptService)
	resultHandler := handlers.NewResultHandler(resultService)

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", handlers.HeaderUserID, handlers.HeaderUserName},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api", handlers.RequireUser())
	{
		api.POST("/quizzes", quizHandler.PublishQuiz)
		api.GET("/quizzes", quizHandler.ListQuizzes)
		api.GET("/quizzes/:id", quizHandler.GetQuiz)
		api.PUT("/quizzes/:id/questions", quizHandler.ReplaceQuestions)
		api.GET("/quizzes/:id/submissions", resultHandler.GetQuizSubmissions)

		api.POST("/quizzes/:id/attempts", attemptHandler.StartAttempt)
		api.POST("/attempts/:id/submit", attemptHandler.SubmitAttempt)

		api.GET("/students/:id/results", resultHandler.GetStudentResults)
	}

	logger.Log.Info("quiz engine listening", zap.String("addr", cfg.Server.Addr))
	if err := r.Run(cfg.Server.Addr); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
