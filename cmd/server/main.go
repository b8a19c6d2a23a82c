package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Haribaskar21/Profile-backend/internal/api"
	"github.com/Haribaskar21/Profile-backend/internal/events"
	"github.com/Haribaskar21/Profile-backend/internal/jwt"
	"github.com/Haribaskar21/Profile-backend/internal/repository"
	"github.com/Haribaskar21/Profile-backend/internal/s3"
	"github.com/Haribaskar21/Profile-backend/internal/service"
	"github.com/Haribaskar21/Profile-backend/internal/tracing"
	_ "github.com/Haribaskar21/Profile-backend/migrations"
)

func main() {
	if err := godotenv.Load(".env.dev"); err != nil {
		fmt.Println("No .env.dev file found, reading from environment variables")
	}

	api.SetupGlobalHandler("profile-service")

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		handleMigrations()
		return
	}

	otelAddr := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelAddr == "" {
		otelAddr = "jaeger:4317"
	}
	shutdownTracer, err := tracing.InitTracerProvider("profile-service", otelAddr)
	if err != nil {
		log.Fatalf("Failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	db := connectDB()
	defer db.Close()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}
	tokens := jwt.NewService([]byte(jwtSecret), jwt.DefaultTTL)

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}
	var publisher events.EventPublisher
	publisher, err = events.NewNatsPublisher(natsURL)
	if err != nil {
		log.Printf("WARNING: Failed to connect to NATS, events disabled: %v", err)
		publisher = events.NoopPublisher{}
	}

	presigner, err := s3.NewAvatarPresigner(s3.Config{
		Endpoint:     os.Getenv("S3_ENDPOINT"),
		Region:       os.Getenv("AWS_REGION"),
		BucketName:   os.Getenv("S3_BUCKET_NAME"),
		AccessKey:    os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
		UsePathStyle: os.Getenv("S3_USE_PATH_STYLE") == "true",
	})
	if err != nil {
		log.Fatalf("Failed to initialize S3 presigner: %v", err)
	}

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	experienceRepo := repository.NewPostgresExperienceRepository(db)

	authService := service.NewAuthService(userRepo, tokens, publisher)
	profileService := service.NewProfileService(profileRepo)
	skillService := service.NewSkillService(skillRepo, publisher)
	experienceService := service.NewExperienceService(experienceRepo)
	publicService := service.NewPublicProfileService(profileRepo, skillRepo, experienceRepo)

	authHandler := api.NewAuthHandler(authService)
	profileHandler := api.NewProfileHandler(profileService, presigner)
	skillHandler := api.NewSkillHandler(skillService)
	experienceHandler := api.NewExperienceHandler(experienceService)
	publicHandler := api.NewPublicHandler(publicService)

	app := fiber.New()
	app.Use(otelfiber.Middleware())
	app.Use(api.PrometheusMiddleware())
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     frontendURL,
		AllowCredentials: true,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "profile-service"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	apiGroup := app.Group("/api")

	authRoutes := apiGroup.Group("/auth")
	authRoutes.Post("/signup", authHandler.Signup)
	authRoutes.Post("/login", authHandler.Login)

	apiGroup.Get("/public/:userId/profile", publicHandler.GetPublicProfile)

	guard := api.AuthMiddleware(tokens)

	profileRoutes := apiGroup.Group("/profile", guard)
	profileRoutes.Get("/", profileHandler.GetProfile)
	profileRoutes.Put("/", profileHandler.UpdateProfile)
	profileRoutes.Post("/avatar/upload-url", profileHandler.GetAvatarUploadURL)

	skillRoutes := apiGroup.Group("/skills", guard)
	skillRoutes.Get("/", skillHandler.ListSkills)
	skillRoutes.Post("/", skillHandler.CreateSkill)
	skillRoutes.Delete("/:id", skillHandler.DeleteSkill)
	skillRoutes.Post("/:id/endorse", skillHandler.EndorseSkill)

	experienceRoutes := apiGroup.Group("/experience", guard)
	experienceRoutes.Get("/", experienceHandler.ListExperience)
	experienceRoutes.Post("/", experienceHandler.CreateExperience)
	experienceRoutes.Delete("/:id", experienceHandler.DeleteExperience)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("Listening profile-service on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func connectDB() *sqlx.DB {
	db, err := sqlx.Connect("pgx", databaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Successfully connected to the database.")
	return db
}

func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_NAME"),
	)
}

func handleMigrations() {
	fmt.Println("Running database migrations...")

	db, err := sql.Open("pgx", databaseURL())
	if err != nil {
		log.Fatalf("failed to connect to database for migration: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("goose: failed to run migrations: %v", err)
	}

	fmt.Println("Migrations applied successfully!")
}
