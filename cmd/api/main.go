package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"go2tech/transcript-analyzer/internal/config"
	"go2tech/transcript-analyzer/internal/handlers"
	"go2tech/transcript-analyzer/internal/refdata"
	"go2tech/transcript-analyzer/internal/repositories"
	"go2tech/transcript-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Load reference data (fail fast: the pipeline is useless without it)
	store, err := refdata.Get(cfg.RefData.Dir)
	if err != nil {
		log.Fatalf("❌ Failed to load reference data: %v", err)
	}
	log.Printf("✅ Reference data loaded: %d subjects, %d jobs\n", len(store.Subjects), len(store.Jobs))

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	docRepo := repositories.NewDocumentRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	studentParser := services.NewStudentParserService()
	courseParser := services.NewCourseParserService()
	subjectMatcher := services.NewSubjectMatcherService(store)
	skillScorer := services.NewSkillScorerService(store, subjectMatcher)
	jobMatcher := services.NewJobMatcherService(store)

	analyzer := services.NewAnalyzerService(
		pdfParser,
		studentParser,
		courseParser,
		subjectMatcher,
		skillScorer,
		jobMatcher,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	uploadHandler := handlers.NewUploadHandler(
		docRepo,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	analyzeHandler := handlers.NewAnalyzeHandler(
		uploadHandler,
		docRepo,
		analysisRepo,
		analyzer,
	)
	resultHandler := handlers.NewResultHandler(analysisRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Transcript Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	transcript := api.Group("/transcript")
	transcript.Post("/upload", uploadHandler.HandleUpload)
	transcript.Post("/analyze", analyzeHandler.HandleAnalyze)
	transcript.Get("/analyze/:id", analyzeHandler.HandleAnalyzeByID)
	transcript.Post("/analyze/:id/debug", analyzeHandler.HandleAnalyzeDebug)
	transcript.Get("/result/:id", resultHandler.HandleGetResult)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Transcript Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/transcript/upload",
				"POST /api/v1/transcript/analyze",
				"GET /api/v1/transcript/analyze/:id",
				"POST /api/v1/transcript/analyze/:id/debug",
				"GET /api/v1/transcript/result/:id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
