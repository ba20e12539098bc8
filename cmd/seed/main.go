package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"eventhub/internal/config"
	"eventhub/internal/db"
	"eventhub/internal/model"
	"eventhub/internal/repository"
)

// Initial category set for a fresh installation.
var defaultCategories = []string{"Workshop", "Party", "Conference", "Meetup"}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Category{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	categoryRepo := repository.NewCategoryRepository(gormDB)
	ctx := context.Background()

	created := 0
	for _, name := range defaultCategories {
		_, err := categoryRepo.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Error checking category %q: %v", name, err)
		}
		if err := categoryRepo.Create(ctx, &model.Category{Name: name}); err != nil {
			log.Fatalf("Error creating category %q: %v", name, err)
		}
		created++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New categories created: %d", created)
	log.Printf("  - Categories already present: %d", len(defaultCategories)-created)
}
