package main

import (
	"flag"
	"log"

	"backend/internal/app/ds"
	"backend/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	seed := flag.Bool("seed", false, "load sample services and testimonials after migration")
	flag.Parse()

	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	// Миграция всех моделей
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Service{},
		&ds.Testimonial{},
		&ds.ContactSubmission{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")

	if *seed {
		if err := loadSampleData(db); err != nil {
			log.Fatalf("Failed to load sample data: %v", err)
		}
		log.Println("Successfully loaded sample data")
	}
}

// loadSampleData наполняет витрину демонстрационными данными,
// существующие записи не дублируются
func loadSampleData(db *gorm.DB) error {
	services := []ds.Service{
		{
			Title:       "Web Development",
			Description: "Custom web development solutions using modern frameworks and technologies. From responsive websites to complex web applications.",
			Icon:        "fa-laptop-code",
			SortOrder:   1,
			IsActive:    true,
		},
		{
			Title:       "Mobile App",
			Description: "Native and cross-platform mobile app development for iOS and Android. User-friendly apps that engage your audience.",
			Icon:        "fa-mobile-alt",
			SortOrder:   2,
			IsActive:    true,
		},
		{
			Title:       "SEO Services",
			Description: "Comprehensive SEO strategies to improve your search engine rankings and drive organic traffic to your website.",
			Icon:        "fa-search",
			SortOrder:   3,
			IsActive:    true,
		},
		{
			Title:       "Digital Marketing",
			Description: "Complete digital marketing solutions including social media marketing, PPC campaigns, and content marketing.",
			Icon:        "fa-chart-line",
			SortOrder:   4,
			IsActive:    true,
		},
	}

	for _, svc := range services {
		err := db.Where(ds.Service{Title: svc.Title}).FirstOrCreate(&svc).Error
		if err != nil {
			return err
		}
	}

	testimonials := []ds.Testimonial{
		{
			ClientName:      "Sarah Johnson",
			ClientCompany:   "Tech Innovations Inc.",
			ClientPosition:  "CEO",
			TestimonialText: "Outstanding service! The team delivered exactly what we needed on time and within budget. Our website looks amazing and performs perfectly.",
			Rating:          5,
			IsFeatured:      true,
			IsActive:        true,
		},
		{
			ClientName:      "Michael Chen",
			ClientCompany:   "Digital Solutions Ltd.",
			ClientPosition:  "Marketing Director",
			TestimonialText: "Professional, reliable, and creative. They helped us increase our online presence significantly. Highly recommended!",
			Rating:          5,
			IsFeatured:      true,
			IsActive:        true,
		},
		{
			ClientName:      "Emily Rodriguez",
			ClientCompany:   "StartUp Hub",
			ClientPosition:  "Founder",
			TestimonialText: "Great communication throughout the project. The mobile app they developed exceeded our expectations and our users love it.",
			Rating:          5,
			IsFeatured:      true,
			IsActive:        true,
		},
		{
			ClientName:      "David Wilson",
			ClientCompany:   "E-commerce Plus",
			ClientPosition:  "Operations Manager",
			TestimonialText: "Their SEO services helped us rank higher on Google and increase our sales by 40%. Amazing results!",
			Rating:          5,
			IsActive:        true,
		},
		{
			ClientName:      "Lisa Thompson",
			ClientCompany:   "Creative Agency",
			ClientPosition:  "Creative Director",
			TestimonialText: "Working with this team was a pleasure. They understood our vision and brought it to life perfectly.",
			Rating:          4,
			IsActive:        true,
		},
	}

	for _, t := range testimonials {
		err := db.Where(ds.Testimonial{ClientName: t.ClientName, ClientCompany: t.ClientCompany}).FirstOrCreate(&t).Error
		if err != nil {
			return err
		}
	}

	return nil
}
