// Command seed provisions the demo account used by the hosted demo:
// demo@construapp.com / demo123 with one example project.
package main

import (
	"log"

	"github.com/Lieutenant23/Construapp/config"
	"github.com/Lieutenant23/Construapp/db"
	"github.com/Lieutenant23/Construapp/db/mongo"
	"github.com/Lieutenant23/Construapp/db/postgres"
	"github.com/Lieutenant23/Construapp/models"
	"github.com/Lieutenant23/Construapp/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.LoadConfig()

	var userRepo repository.UserRepository
	var projectRepo repository.ProjectRepository

	switch cfg.DBType {
	case "postgres":
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			log.Fatalf("could not connect: %v", err)
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		projectRepo = repository.NewPostgresProjectRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			log.Fatalf("could not connect: %v", err)
		}
		defer mg.Disconnect()

		userRepo = repository.NewMongoUserRepo(mg.Client)
		projectRepo = repository.NewMongoProjectRepo(mg.Client)

	default:
		log.Fatal("DB_TYPE not supported")
	}

	user, err := userRepo.GetUserByEmail("demo@construapp.com")
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	if user == nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		user = &models.User{
			Name:         "Usuário Demo",
			Email:        "demo@construapp.com",
			PasswordHash: string(hashed),
		}
		if err := userRepo.CreateUser(user); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	projects, err := projectRepo.ListProjectsByUser(user.ID)
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	if len(projects) == 0 {
		project := &models.Project{
			UserID: user.ID,
			Name:   "Obra Exemplo",
			Status: models.StatusAtivo,
		}
		if err := projectRepo.CreateProject(project); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	log.Println("seed completed")
}
