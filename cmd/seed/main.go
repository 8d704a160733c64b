package main

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sitelab/sitelab-api/internal/config"
	"github.com/sitelab/sitelab-api/internal/entity"
	"github.com/sitelab/sitelab-api/internal/infra/database"
)

// Seeds the portfolio items shown on the public site and the default
// admin account. Safe to re-run.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	log.Println("🌱 Seeding database...")

	portfolioRepo := database.NewPortfolioRepository(db)
	for _, item := range portfolioItems() {
		if err := portfolioRepo.Upsert(ctx, item); err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
	}
	log.Printf("✅ Seeded %d portfolio items", len(portfolioItems()))

	// Default admin user; change the password in production.
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), 12)
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	adminRepo := database.NewAdminUserRepository(db)
	admin := entity.NewAdminUser("admin@sitelab.com", "Admin User", string(hashed))
	if err := adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			log.Println("⚠️ Admin user already exists, skipping")
		} else {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
	} else {
		log.Println("✅ Created default admin user")
	}

	log.Println("🎉 Seeding complete!")
}

func portfolioItems() []*entity.PortfolioItem {
	items := []*entity.PortfolioItem{
		{
			Title:       "Modern E-Commerce Platform",
			ClientName:  "TechGear Store",
			Industry:    "ecommerce",
			Problem:     "TechGear Store was struggling with an outdated website that had slow load times and poor mobile experience, resulting in high cart abandonment rates.",
			Solution:    "We designed and built a modern, fast-loading e-commerce platform with intuitive navigation, streamlined checkout process, and mobile-first design.",
			Outcome:     "Cart abandonment decreased by 45%, mobile conversions increased by 120%, and overall revenue grew by 65% within 3 months.",
			ImageURL:    "https://images.unsplash.com/photo-1661956602116-aa6865609028?w=800&q=80",
			BeforeImage: "https://images.unsplash.com/photo-1531403009284-440f080d1e12?w=800&q=80",
			AfterImage:  "https://images.unsplash.com/photo-1661956602116-aa6865609028?w=800&q=80",
			LiveURL:     "https://example.com",
			Featured:    true,
			Order:       1,
		},
		{
			Title:      "Professional Services Website",
			ClientName: "Martinez Law Firm",
			Industry:   "service_provider",
			Problem:    "Martinez Law Firm had no online presence and was losing potential clients to competitors with modern websites.",
			Solution:   "Created a professional, trust-building website with clear service pages, client testimonials, and an easy-to-use contact system.",
			Outcome:    "Online inquiries increased by 300%, and the firm acquired 25 new clients within the first month of launch.",
			ImageURL:   "https://images.unsplash.com/photo-1450101499163-c8848c66ca85?w=800&q=80",
			LiveURL:    "https://example.com",
			Featured:   true,
			Order:      2,
		},
		{
			Title:      "Restaurant & Ordering System",
			ClientName: "Bella Italia",
			Industry:   "restaurant",
			Problem:    "Bella Italia relied solely on phone orders and walk-ins, missing out on the growing demand for online ordering.",
			Solution:   "Built a beautiful restaurant website with integrated online ordering, menu management, and reservation system.",
			Outcome:    "Online orders now account for 40% of total revenue, and table reservations increased by 85%.",
			ImageURL:   "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800&q=80",
			Featured:   true,
			Order:      3,
		},
		{
			Title:      "Healthcare Provider Portal",
			ClientName: "Wellness Medical Center",
			Industry:   "healthcare",
			Problem:    "Patients found it difficult to book appointments and access information, leading to high call volumes and frustrated staff.",
			Solution:   "Developed a patient-friendly website with online appointment booking, service information, and a patient portal.",
			Outcome:    "Administrative call volume decreased by 60%, and patient satisfaction scores improved significantly.",
			ImageURL:   "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=800&q=80",
			Featured:   false,
			Order:      4,
		},
		{
			Title:      "Startup Landing Page",
			ClientName: "InnovateTech",
			Industry:   "startup",
			Problem:    "InnovateTech needed a compelling online presence to attract investors and early adopters for their new SaaS product.",
			Solution:   "Created a conversion-focused landing page with clear value proposition, product demos, and investor information.",
			Outcome:    "Secured $500K in seed funding and acquired 1,000 beta users within 2 weeks of launch.",
			ImageURL:   "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&q=80",
			Featured:   true,
			Order:      5,
		},
		{
			Title:      "Real Estate Showcase",
			ClientName: "Premier Properties",
			Industry:   "real_estate",
			Problem:    "Property listings were hard to browse, and potential buyers couldn't easily schedule viewings or get in touch.",
			Solution:   "Built a modern real estate website with advanced search, virtual tours, and integrated booking for property viewings.",
			Outcome:    "Property inquiry rate increased by 150%, and time-to-sale decreased by 25%.",
			ImageURL:   "https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=800&q=80",
			Featured:   false,
			Order:      6,
		},
	}

	now := time.Now().UTC()
	for _, item := range items {
		item.ID = strings.ToLower(strings.ReplaceAll(item.Title, " ", "-"))
		item.CreatedAt = now
	}
	return items
}
