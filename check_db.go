package main

import (
	"fmt"
	"log"

	"backend/internal/app/ds"
	"backend/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Утилита для быстрой проверки содержимого БД
func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var services []ds.Service
	if err := db.Order("sort_order, title").Find(&services).Error; err != nil {
		log.Fatal("Failed to get services:", err)
	}

	fmt.Println("Services in database:")
	for _, service := range services {
		fmt.Printf("ID: %d, Title: %s, Active: %v, Order: %d\n",
			service.ID, service.Title, service.IsActive, service.SortOrder)
	}

	var count int64
	if err := db.Model(&ds.ContactSubmission{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to count submissions:", err)
	}
	fmt.Printf("Contact submissions: %d\n", count)
}
