package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"recipebox/internal/api/handlers"
	"recipebox/internal/api/routes"
	"recipebox/internal/middleware"
	"recipebox/internal/utils"
	"recipebox/internal/utils/mailing"
	"recipebox/internal/utils/storage"
	"recipebox/pkg/category"
	"recipebox/pkg/featured"
	"recipebox/pkg/jwt"
	"recipebox/pkg/recipe"
	"recipebox/pkg/submission"
	"recipebox/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()

	// Repository
	userRepository := user.NewUserRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	submissionRepository := submission.NewSubmissionRepository(db)
	featuredRepository := featured.NewFeaturedRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	categoryService := category.NewCategoryService(categoryRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, submissionRepository, categoryRepository, s3)
	submissionService := submission.NewSubmissionService(submissionRepository, mailer)
	featuredService := featured.NewFeaturedService(featuredRepository, recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, submissionService, validator)
	submissionHandler := handlers.NewSubmissionHandler(submissionService, validator)
	featuredHandler := handlers.NewFeaturedHandler(featuredService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		CategoryHandler:   categoryHandler,
		SubmissionHandler: submissionHandler,
		FeaturedHandler:   featuredHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
