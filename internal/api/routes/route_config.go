package routes

import (
	"github.com/gofiber/fiber/v2"

	"recipebox/domain"
	"recipebox/internal/api/handlers"
	"recipebox/internal/middleware"
	"recipebox/pkg/jwt"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	CategoryHandler   handlers.CategoryHandler
	SubmissionHandler handlers.SubmissionHandler
	FeaturedHandler   handlers.FeaturedHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Users()
	c.Recipes()
	c.Categories()
	c.Submissions()
	c.Featured()
	c.GuestRoute()
}

func (c *Config) Users() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	admin := c.Middleware.RequireRole(domain.RoleAdmin)

	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", auth, c.UserHandler.Me)

		user.Get("", auth, admin, c.UserHandler.GetUsers)
		user.Patch("/:id/role", auth, admin, c.UserHandler.UpdateRole)
		user.Delete("/:id", auth, admin, c.UserHandler.DeleteUser)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	{
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Get("", c.RecipeHandler.GetMyRecipes)
		recipes.Get("/submissions", c.RecipeHandler.GetMySubmissions)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)

		recipes.Post("/:id/submit", c.RecipeHandler.SubmitRecipe)
		recipes.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
	}
}

func (c *Config) Categories() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	admin := c.Middleware.RequireRole(domain.RoleAdmin)

	categories := c.App.Group("/api/v1/categories")
	{
		categories.Get("", c.CategoryHandler.GetCategories)
		categories.Get("/:id", c.CategoryHandler.GetCategory)

		categories.Post("", auth, admin, c.CategoryHandler.CreateCategory)
		categories.Put("/:id", auth, admin, c.CategoryHandler.UpdateCategory)
		categories.Delete("/:id", auth, admin, c.CategoryHandler.DeleteCategory)
	}
}

func (c *Config) Submissions() {
	submissions := c.App.Group(
		"/api/v1/submissions",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RequireRole(domain.RoleContributor),
	)
	{
		submissions.Get("/pending", c.SubmissionHandler.GetPendingSubmissions)
		submissions.Get("/:id/review", c.SubmissionHandler.OpenForReview)
		submissions.Post("/:id/approve", c.SubmissionHandler.Approve)
		submissions.Post("/:id/reject", c.SubmissionHandler.Reject)
	}
}

func (c *Config) Featured() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	contributor := c.Middleware.RequireRole(domain.RoleContributor)

	featured := c.App.Group("/api/v1/featured")
	{
		featured.Get("", c.FeaturedHandler.GetFeaturedRecipes)
		featured.Get("/:id", c.FeaturedHandler.GetFeaturedDetail)

		featured.Post("/:id/copy", auth, c.FeaturedHandler.CopyFeaturedRecipe)
		featured.Post("/:id/unfeature", auth, contributor, c.FeaturedHandler.UnfeatureRecipe)
		featured.Delete("/:id", auth, c.FeaturedHandler.DeleteFeaturedRecipe)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
