package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"recipebox/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeSubmission{}); err != nil {
		log.Fatalf("Error migrating recipe submission database: %v", err)
		return err
	}

	// At most one active submission per recipe. Concurrent submits race past
	// the service-level check; this index makes the second insert fail.
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_active_submission_per_recipe
		ON recipe_submissions (recipe_id)
		WHERE status IN ('pending', 'under_review');`)

	fmt.Println("Database migration complete")
	return nil
}
