package config

import (
	"errors"
	"log"
	"time"

	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/ILoveTech2001/JALAI-2/utils"
)

// SeedAdmin creates the bootstrap admin from ADMIN_EMAIL/ADMIN_PASSWORD
// if no account with that email exists yet.
func SeedAdmin(repos *repository.Repositories, cfg *Config) {
	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin bootstrap")
		return
	}

	if _, err := repos.Users.FindByEmail(cfg.AdminEmail); err == nil {
		log.Printf("Admin already exists: %s", cfg.AdminEmail)
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Printf("Failed to look up admin account: %v", err)
		return
	}

	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Email:         cfg.AdminEmail,
		Password:      hashed,
		FirstName:     "Admin",
		LastName:      "User",
		Role:          models.RoleAdmin,
		IsActive:      true,
		EmailVerified: true,
	}
	if err := repos.Users.Create(&admin); err != nil {
		log.Printf("Failed to seed admin: %v", err)
		return
	}
	log.Printf("Admin seeded: %s (ID: %s)", admin.Email, admin.ID)
}

// SeedCategories populates the default catalog categories
func SeedCategories(repos *repository.Repositories) {
	categories := []models.Category{
		{Name: "Electronics", Description: "Electronic devices and gadgets", SortOrder: 1, IsActive: true},
		{Name: "Books & Education", Description: "Books, educational materials, and learning resources", SortOrder: 2, IsActive: true},
		{Name: "Clothing", Description: "Clothes and accessories", SortOrder: 3, IsActive: true},
		{Name: "Home & Furniture", Description: "Furniture and household items", SortOrder: 4, IsActive: true},
		{Name: "Toys & Games", Description: "Toys, games, and entertainment for children", SortOrder: 5, IsActive: true},
	}

	for _, category := range categories {
		if _, err := repos.Categories.FindBySlug(utils.Slugify(category.Name)); err == nil {
			continue
		}
		c := category
		if err := repos.Categories.Create(&c); err != nil {
			log.Printf("Failed to seed category %s: %v", category.Name, err)
		}
	}
	log.Println("Category seeding complete.")
}

// SeedDemoData fills the memory backend with sample accounts, listings
// and orphanages so the API is usable without a database.
func SeedDemoData(repos *repository.Repositories) {
	password, _ := utils.HashPassword("client123")
	client := models.User{
		Email:         "client@jalai.com",
		Password:      password,
		FirstName:     "John",
		LastName:      "Client",
		Role:          models.RoleClient,
		IsActive:      true,
		EmailVerified: true,
	}
	if err := repos.Users.Create(&client); err != nil {
		log.Printf("Failed to seed demo client: %v", err)
		return
	}

	orphanages := []models.Orphanage{
		{
			Name:             "Hope Children Home",
			ContactEmail:     "hope@jalai.com",
			ContactPhone:     "+237 670 000 001",
			Location:         "Douala, Cameroon",
			Description:      "Caring for children since 2005",
			NeedsDescription: "School supplies and clothing",
			CurrentChildren:  45,
			Capacity:         60,
			Verified:         true,
		},
		{
			Name:             "Sunrise Orphanage",
			ContactEmail:     "sunrise@jalai.com",
			ContactPhone:     "+237 670 000 002",
			Location:         "Yaounde, Cameroon",
			Description:      "A safe home for abandoned children",
			NeedsDescription: "Food and medical supplies",
			CurrentChildren:  30,
			Capacity:         40,
			Verified:         true,
		},
	}
	for i := range orphanages {
		if err := repos.Orphanages.Create(&orphanages[i]); err != nil {
			log.Printf("Failed to seed orphanage %s: %v", orphanages[i].Name, err)
		}
	}

	electronics, err := repos.Categories.FindBySlug("electronics")
	if err != nil {
		log.Printf("Demo products skipped, electronics category missing: %v", err)
		return
	}
	books, err := repos.Categories.FindBySlug("books-education")
	if err != nil {
		log.Printf("Demo products skipped, books category missing: %v", err)
		return
	}

	products := []models.Product{
		{
			Name:        "Laptop for Donation",
			Description: "Used laptop in good condition, perfect for students",
			Price:       250.00,
			Condition:   models.ConditionGood,
			Status:      models.StatusActive,
			SellerID:    client.ID,
			CategoryID:  electronics.ID,
			Featured:    true,
		},
		{
			Name:        "Children Books Set",
			Description: "Collection of educational books for children",
			Price:       30.00,
			Condition:   models.ConditionLikeNew,
			Status:      models.StatusActive,
			SellerID:    client.ID,
			CategoryID:  books.ID,
		},
	}
	for i := range products {
		if err := repos.Products.Create(&products[i]); err != nil {
			log.Printf("Failed to seed product %s: %v", products[i].Name, err)
		}
	}

	seedDemoCommerce(repos, &client, products)

	log.Println("Demo data seeding complete.")
}

// seedDemoCommerce adds sample orders, payments and reviews so the
// admin dashboard sections have data to show in demo mode.
func seedDemoCommerce(repos *repository.Repositories, client *models.User, products []models.Product) {
	if len(products) < 2 {
		return
	}

	password, _ := utils.HashPassword("client123")
	buyer := models.User{
		Email:         "jane@jalai.com",
		Password:      password,
		FirstName:     "Jane",
		LastName:      "Smith",
		Role:          models.RoleClient,
		IsActive:      true,
		EmailVerified: true,
	}
	if err := repos.Users.Create(&buyer); err != nil {
		log.Printf("Failed to seed demo buyer: %v", err)
		return
	}

	order := models.Order{
		BuyerID: buyer.ID,
		Total:   products[0].Price,
		Items: []models.OrderItem{
			{ProductID: products[0].ID, Name: products[0].Name, Quantity: 1, Price: products[0].Price},
		},
	}
	if err := repos.Orders.Create(&order); err != nil {
		log.Printf("Failed to seed demo order: %v", err)
		return
	}

	now := time.Now()
	payments := []models.Payment{
		{
			OrderID:       order.ID,
			UserID:        buyer.ID,
			Amount:        products[0].Price,
			Currency:      "XAF",
			Method:        "MOBILE_MONEY",
			Provider:      "MTN_MOMO",
			Status:        models.PaymentStateCompleted,
			TransactionID: "mtn-12345",
			Reference:     "REF-001",
			CompletedAt:   &now,
		},
		{
			OrderID:       order.ID,
			UserID:        buyer.ID,
			Amount:        products[1].Price,
			Currency:      "XAF",
			Method:        "BANK_TRANSFER",
			Provider:      "COMMERCIAL_BANK",
			Status:        models.PaymentStatePending,
			TransactionID: "bank-67890",
			Reference:     "REF-002",
		},
	}
	for i := range payments {
		if err := repos.Payments.Create(&payments[i]); err != nil {
			log.Printf("Failed to seed payment %s: %v", payments[i].Reference, err)
		}
	}

	reviews := []models.Review{
		{
			UserID:    buyer.ID,
			ProductID: products[0].ID,
			Rating:    5,
			Title:     "Excellent product!",
			Comment:   "Very satisfied with the quality and fast delivery.",
			Status:    models.ReviewApproved,
			Helpful:   12,
		},
		{
			UserID:    client.ID,
			ProductID: products[1].ID,
			Rating:    4,
			Title:     "Good value for money",
			Comment:   "Product as described, would recommend.",
			Status:    models.ReviewPending,
			Helpful:   3,
		},
	}
	for i := range reviews {
		if err := repos.Reviews.Create(&reviews[i]); err != nil {
			log.Printf("Failed to seed review %s: %v", reviews[i].Title, err)
		}
	}
}
