package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"designhub/internal/database"
	"designhub/internal/domain"
	"designhub/internal/middleware"
	"designhub/internal/modules/auth"
	"designhub/internal/modules/comment"
	"designhub/internal/modules/pendingproduct"
	"designhub/internal/modules/product"
	"designhub/internal/modules/project"
	"designhub/internal/modules/room"
	jwtsvc "designhub/internal/pkg/jwt"
	"designhub/internal/pkg/storage"
	"designhub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "designhub.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Firm{},
		&domain.FirmClient{},
		&domain.Project{},
		&domain.ProjectClient{},
		&domain.ProjectDesigner{},
		&domain.Room{},
		&domain.Product{},
		&domain.PendingProduct{},
		&domain.PendingProductOption{},
		&domain.Comment{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	store, err := storage.New(uploadDir)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	productRepo := repository.NewProductRepository(db)
	pendingRepo := repository.NewPendingProductRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	projectService := project.NewService(projectRepo, userRepo, roomRepo, commentRepo)
	projectHandler := project.NewHandler(projectService)

	roomService := room.NewService(projectRepo, roomRepo, store)
	roomHandler := room.NewHandler(roomService)

	productService := product.NewService(projectRepo, roomRepo, productRepo)
	productHandler := product.NewHandler(productService)

	pendingService := pendingproduct.NewService(projectRepo, roomRepo, pendingRepo)
	pendingHandler := pendingproduct.NewHandler(pendingService)

	finder := comment.NewFinder(roomRepo, productRepo, pendingRepo)
	commentService := comment.NewService(projectRepo, commentRepo, finder)
	commentHandler := comment.NewHandler(commentService)

	r := gin.New()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())
	r.Static("/uploads", store.Dir())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.AuthRequired(j, userRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
			projectHandler.RegisterRoutes(protected)
			roomHandler.RegisterRoutes(protected)
			productHandler.RegisterRoutes(protected)
			pendingHandler.RegisterRoutes(protected)
			commentHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
