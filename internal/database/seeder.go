// server/internal/database/seeder.go
package database

import (
	"context"
	"log"
	"time"

	"cleanconnect-api-server/config"
	"cleanconnect-api-server/internal/auth"
	"cleanconnect-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedAdmin creates the administrator account if it does not exist yet.
// Credentials come from config; without a password the step is skipped.
func SeedAdmin(db *mongo.Database, cfg config.AdminConfig) error {
	if cfg.Password == "" {
		log.Println("ADMIN_PASSWORD not set. Admin seeding skipped.")
		return nil
	}

	userCollection := db.Collection("users")

	count, err := userCollection.CountDocuments(context.Background(), bson.M{"email": cfg.Email})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin already exists. Seeding skipped.")
		return nil
	}

	log.Println("Admin not found. Seeding...")
	hashedPassword, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:     cfg.Email,
		Name:      "CleanConnect Admin",
		Password:  hashedPassword,
		UserType:  models.UserTypeAdmin,
		Points:    0,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := userCollection.InsertOne(context.Background(), admin); err != nil {
		return err
	}

	log.Println("Admin seeded successfully.")
	return nil
}

// SeedReferenceData fills the recyclers, challenges, tips and quizQuestions
// collections with starter documents when they are empty. Existing data is
// never touched.
func SeedReferenceData(db *mongo.Database) error {
	if err := seedIfEmpty(db, "recyclers", demoRecyclers()); err != nil {
		return err
	}
	if err := seedIfEmpty(db, "challenges", demoChallenges()); err != nil {
		return err
	}
	if err := seedIfEmpty(db, "tips", demoTips()); err != nil {
		return err
	}
	return seedIfEmpty(db, "quizQuestions", demoQuizQuestions())
}

func seedIfEmpty(db *mongo.Database, collection string, docs []interface{}) error {
	coll := db.Collection(collection)
	count, err := coll.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if _, err := coll.InsertMany(context.Background(), docs); err != nil {
		return err
	}
	log.Printf("Seeded %d documents into %s", len(docs), collection)
	return nil
}

func demoRecyclers() []interface{} {
	return []interface{}{
		models.Recycler{
			Name:       "Ramesh Kabadiwala",
			Phone:      "+91 98765 43210",
			Email:      "ramesh@example.com",
			Address:    "Shop 15, Main Market, Andheri West, Mumbai",
			Area:       "Andheri West",
			WasteTypes: []models.WasteType{models.WastePlastic, models.WastePaper, models.WasteMetal},
			Rating:     4.5,
			IsVerified: true,
			PricePerKg: models.NormalizePriceTable(map[models.WasteType]float64{
				models.WastePlastic: 10, models.WastePaper: 8, models.WasteMetal: 25,
				models.WasteGlass: 5, models.WasteElectronic: 15, models.WasteOrganic: 3,
				models.WasteTextile: 12, models.WasteBattery: 20,
			}),
			Availability: models.Availability{
				Days:  []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
				Hours: "9:00 AM - 6:00 PM",
			},
			CreatedAt: time.Now(),
		},
		models.Recycler{
			Name:       "Green Earth Recyclers",
			Phone:      "+91 87654 32109",
			Email:      "info@greenearth.com",
			Address:    "Plot 42, Industrial Area, Bandra East, Mumbai",
			Area:       "Bandra East",
			WasteTypes: []models.WasteType{models.WasteElectronic, models.WasteBattery, models.WasteMetal, models.WastePlastic},
			Rating:     4.8,
			IsVerified: true,
			PricePerKg: models.NormalizePriceTable(map[models.WasteType]float64{
				models.WastePlastic: 12, models.WastePaper: 9, models.WasteMetal: 28,
				models.WasteGlass: 6, models.WasteElectronic: 18,
				models.WasteTextile: 10, models.WasteBattery: 25,
			}),
			Availability: models.Availability{
				Days:  []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
				Hours: "8:00 AM - 5:00 PM",
			},
			CreatedAt: time.Now(),
		},
		models.Recycler{
			Name:       "Suresh Paper Collection",
			Phone:      "+91 76543 21098",
			Address:    "Lane 3, Dharavi, Mumbai",
			Area:       "Dharavi",
			WasteTypes: []models.WasteType{models.WastePaper, models.WasteTextile},
			Rating:     4.2,
			IsVerified: false,
			PricePerKg: models.NormalizePriceTable(map[models.WasteType]float64{
				models.WastePlastic: 8, models.WastePaper: 10, models.WasteMetal: 20,
				models.WasteGlass: 4, models.WasteElectronic: 12,
				models.WasteTextile: 15, models.WasteBattery: 18,
			}),
			Availability: models.Availability{
				Days:  []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
				Hours: "7:00 AM - 7:00 PM",
			},
			CreatedAt: time.Now(),
		},
	}
}

func demoChallenges() []interface{} {
	now := time.Now()
	return []interface{}{
		models.Challenge{
			Title:        "Plastic-Free Week Challenge",
			Description:  "Reduce your plastic consumption by 80% this week. Track your daily plastic usage and find alternatives.",
			Type:         "individual",
			Target:       7,
			Unit:         "days",
			StartDate:    now,
			EndDate:      now.AddDate(0, 0, 7),
			Reward:       100,
			Participants: []string{},
			IsActive:     true,
		},
		models.Challenge{
			Title:        "Community Recycling Drive",
			Description:  "Organize or participate in a community recycling drive. Collect at least 50kg of recyclable materials.",
			Type:         "community",
			Target:       50,
			Unit:         "kg",
			StartDate:    now,
			EndDate:      now.AddDate(0, 0, 21),
			Reward:       250,
			Participants: []string{},
			IsActive:     true,
		},
	}
}

func demoTips() []interface{} {
	return []interface{}{
		models.Tip{
			Title:    "Separate Wet and Dry Waste",
			Content:  "Always separate organic waste (food scraps, garden waste) from dry recyclables (paper, plastic, metal). This makes recycling more efficient.",
			Category: "segregation",
			IsActive: true,
		},
		models.Tip{
			Title:    "Clean Containers Before Recycling",
			Content:  "Rinse food containers and remove labels before putting them in recycling bins. Clean materials fetch better prices.",
			Category: "recycling",
			IsActive: true,
		},
		models.Tip{
			Title:    "Start Home Composting",
			Content:  "Convert your kitchen waste into nutrient-rich compost. Use a simple compost bin or pit in your garden.",
			Category: "composting",
			IsActive: true,
		},
	}
}

func demoQuizQuestions() []interface{} {
	return []interface{}{
		models.QuizQuestion{
			Question:      "Where should you dispose of used batteries?",
			Options:       []string{"Regular dustbin", "E-waste collection center", "Compost bin", "Recycling bin"},
			CorrectAnswer: 1,
			Explanation:   "Batteries contain harmful chemicals and should be disposed of at designated e-waste collection centers.",
			Difficulty:    "easy",
			Category:      "segregation",
			Points:        10,
		},
		models.QuizQuestion{
			Question:      "Which of these items can be composted?",
			Options:       []string{"Plastic bags", "Fruit peels", "Glass bottles", "Metal cans"},
			CorrectAnswer: 1,
			Explanation:   "Fruit peels are organic waste and can be easily composted to create nutrient-rich soil.",
			Difficulty:    "easy",
			Category:      "recycling",
			Points:        10,
		},
		models.QuizQuestion{
			Question:      "What is the best way to reduce plastic waste?",
			Options:       []string{"Burn plastic items", "Use reusable bags", "Throw in river", "Bury in ground"},
			CorrectAnswer: 1,
			Explanation:   "Using reusable bags reduces the demand for single-use plastic bags, helping reduce plastic waste.",
			Difficulty:    "medium",
			Category:      "environment",
			Points:        15,
		},
	}
}
