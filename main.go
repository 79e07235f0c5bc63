package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"nagarseva/config"
	"nagarseva/repository"
	"nagarseva/routes"
	"nagarseva/schema"
	"nagarseva/service"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg := config.LoadConfig()

	// Initialize database connection (UTC for consistent timestamps)
	dsn := cfg.Database.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.DBName,
		)
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Database connection established")

	// Create any missing tables (never drops or overwrites)
	schema.InitializeDatabase(db)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	officerRepo := repository.NewOfficerRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		officerRepo,
		adminRepo,
		cfg.Auth.JWTSecret,
		cfg.Auth.StaffTokenTTLHours,
		cfg.Auth.CitizenTokenTTLHours,
	)
	accountService := service.NewAccountService(userRepo, officerRepo, adminRepo)
	complaintService := service.NewComplaintService(complaintRepo)
	engagementService := service.NewEngagementService(engagementRepo)
	staffService := service.NewStaffService(officerRepo, adminRepo, complaintRepo)

	// Setup routes
	router := routes.SetupRoutes(
		authService,
		accountService,
		complaintService,
		engagementService,
		staffService,
		cfg.Auth.JWTSecret,
		cfg.Uploads.BasePath,
	)

	// CORS middleware for the role-gated dashboards
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "3600")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, corsHandler(router)))
}
