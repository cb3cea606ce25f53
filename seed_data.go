package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/iimrul/dhan/models"
)

// seedDatabase loads the demo catalog (native rice seeds, marketplace
// listings and farmers) into an empty database. Existing data is left alone.
func seedDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Seed{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds := []models.Seed{
		{
			Name:            "Kalo Jira Rice",
			Description:     "Aromatic black rice, known for its nutty flavor and health benefits. Drought resistant.",
			OptimalPH:       "5.5-6.5",
			OptimalMoisture: "Medium",
			Image:           "https://picsum.photos/seed/101/400/300",
		},
		{
			Name:            "Chinigura Rice",
			Description:     "Small-grain aromatic rice, popular for making biryani and pilaf. Requires consistent moisture.",
			OptimalPH:       "6.0-7.0",
			OptimalMoisture: "High",
			Image:           "https://picsum.photos/seed/102/400/300",
		},
		{
			Name:            "Balam Dhan",
			Description:     "A traditional long-grain rice variety that is resilient to pests and thrives in loamy soil.",
			OptimalPH:       "5.8-6.8",
			OptimalMoisture: "Medium",
			Image:           "https://picsum.photos/seed/103/400/300",
		},
		{
			Name:            "Nazirshail",
			Description:     "A popular fine rice variety known for its taste and texture. Adaptable to various soil types.",
			OptimalPH:       "5.5-7.0",
			OptimalMoisture: "Medium-High",
			Image:           "https://picsum.photos/seed/104/400/300",
		},
		{
			Name:            "BRRI Dhan 29",
			Description:     "A high-yielding variety developed for the Boro season, known for its tolerance to slightly saline conditions.",
			OptimalPH:       "6.5-7.5",
			OptimalMoisture: "High",
			Image:           "https://picsum.photos/seed/105/400/300",
		},
	}

	products := []models.Product{
		{
			Name:        "Organic Kalo Jira Rice (5kg)",
			Farmer:      "Rahim Ali",
			Price:       650,
			Description: "Freshly harvested, naturally grown Kalo Jira rice from our farm in Mymensingh. No chemicals used.",
			Image:       "https://picsum.photos/seed/201/400/300",
		},
		{
			Name:        "Premium Chinigura Rice (10kg)",
			Farmer:      "Fatima Begum",
			Price:       1200,
			Description: "Sun-dried aromatic Chinigura rice, perfect for special occasions. Sourced from organic farms in Dinajpur.",
			Image:       "https://picsum.photos/seed/202/400/300",
		},
		{
			Name:        "Healthy Balam Rice (5kg)",
			Farmer:      "Jamal Uddin",
			Price:       550,
			Description: "Traditional Balam rice, cultivated using sustainable methods that restore soil health. From our fields in Khulna.",
			Image:       "https://picsum.photos/seed/203/400/300",
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&seeds).Error; err != nil {
			return err
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		farmers := []models.Farmer{
			{
				ID:       "farmer-1",
				Name:     "Rahim Ali",
				Contact:  "rahim.ali@example.com",
				Products: []models.FarmerProduct{{ProductID: products[0].ID}},
			},
			{
				ID:       "farmer-2",
				Name:     "Fatima Begum",
				Contact:  "fatima.b@example.com",
				Products: []models.FarmerProduct{{ProductID: products[1].ID}},
			},
			{
				ID:       "farmer-3",
				Name:     "Jamal Uddin",
				Contact:  "jamal.uddin@example.com",
				Products: []models.FarmerProduct{{ProductID: products[2].ID}},
			},
		}
		if err := tx.Create(&farmers).Error; err != nil {
			return err
		}

		log.Printf("🌱 Seeded demo catalog: %d seeds, %d products, %d farmers", len(seeds), len(products), len(farmers))
		return nil
	})
}
