package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/Lieutenant23/Construapp/config"
	"github.com/Lieutenant23/Construapp/db"
	"github.com/Lieutenant23/Construapp/db/mongo"
	"github.com/Lieutenant23/Construapp/db/postgres"
	"github.com/Lieutenant23/Construapp/handlers"
	"github.com/Lieutenant23/Construapp/repository"
	"github.com/Lieutenant23/Construapp/routes"
	"github.com/Lieutenant23/Construapp/storage"
)

func main() {
	// Load config from .env or environment
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set in environment")
	}

	var userRepo repository.UserRepository
	var projectRepo repository.ProjectRepository
	var expenseRepo repository.ExpenseRepository
	var attachmentRepo repository.AttachmentRepository

	switch cfg.DBType {
	case "postgres":
		// Run migrations (Postgres only)
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		projectRepo = repository.NewPostgresProjectRepo(pg.Conn)
		expenseRepo = repository.NewPostgresExpenseRepo(pg.Conn)
		attachmentRepo = repository.NewPostgresAttachmentRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		userRepo = repository.NewMongoUserRepo(mg.Client)
		projectRepo = repository.NewMongoProjectRepo(mg.Client)
		expenseRepo = repository.NewMongoExpenseRepo(mg.Client)
		attachmentRepo = repository.NewMongoAttachmentRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// File storage for attachments
	var store storage.FileStore
	switch cfg.StorageType {
	case "local":
		local, err := storage.NewLocalStore(cfg.UploadDir)
		if err != nil {
			panic(err)
		}
		store = local
	case "r2":
		r2, err := storage.NewR2Store(context.Background(), storage.R2Config{
			Bucket:          cfg.R2Bucket,
			AccountID:       cfg.R2AccountID,
			PublicBaseURL:   cfg.R2PublicURL,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
		})
		if err != nil {
			panic(err)
		}
		store = r2
	default:
		panic("STORAGE_TYPE not supported")
	}

	// Ownership guard shared by every resource handler
	guard := &handlers.OwnershipGuard{
		Projects:    projectRepo,
		Expenses:    expenseRepo,
		Attachments: attachmentRepo,
	}

	// Handlers
	authHandler := &handlers.AuthHandler{Repo: userRepo, JWTSecret: cfg.JWTSecret}
	projectHandler := &handlers.ProjectHandler{
		Repo:        projectRepo,
		Attachments: attachmentRepo,
		Guard:       guard,
		Store:       store,
	}
	expenseHandler := &handlers.ExpenseHandler{
		Repo:        expenseRepo,
		Attachments: attachmentRepo,
		Guard:       guard,
		Store:       store,
	}
	attachmentHandler := &handlers.AttachmentHandler{
		Repo:  attachmentRepo,
		Guard: guard,
		Store: store,
	}

	// Report handler with combined repository
	reportRepo := repository.NewReportRepository(expenseRepo)
	reportHandler := &handlers.ReportHandler{Repo: reportRepo, Guard: guard}

	mux := routes.SetupRoutes(cfg, authHandler, projectHandler, expenseHandler, attachmentHandler, reportHandler)

	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		panic(err)
	}
}
