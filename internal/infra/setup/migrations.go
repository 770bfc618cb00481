package setup

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SageMyrloc/FinalProject/internal/domain"
)

// MigrateDB creates or updates every table and seeds the reference data.
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}

	err := db.AutoMigrate(
		&domain.User{},
		&domain.ActivityType{},
		&domain.ApplianceType{},
		&domain.Appliance{},
		&domain.TransportType{},
		&domain.Transport{},
		&domain.FoodType{},
		&domain.Food{},
		&domain.ActivityLog{},
		&domain.UserLog{},
	)
	if err != nil {
		logrus.Errorf("Failed to auto-migrate tables: %v", err)
		return fmt.Errorf("failed to auto-migrate tables: %w", err)
	}

	if err := SeedCatalog(db); err != nil {
		return err
	}
	logrus.Info("Database migration completed successfully")
	return nil
}

// SeedCatalog inserts the reference rows. Rows that already exist are left alone,
// so running it on every start is safe.
func SeedCatalog(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		keep := tx.Clauses(clause.OnConflict{DoNothing: true})

		activityTypes := make([]domain.ActivityType, 0, len(domain.Kinds))
		for _, k := range domain.Kinds {
			activityTypes = append(activityTypes, domain.ActivityType{ID: uint(k), Name: k.String()})
		}
		if err := keep.Create(&activityTypes).Error; err != nil {
			return fmt.Errorf("seed activity types: %w", err)
		}

		if err := keep.Create(&seedApplianceTypes).Error; err != nil {
			return fmt.Errorf("seed appliance types: %w", err)
		}
		if err := keep.Create(&seedAppliances).Error; err != nil {
			return fmt.Errorf("seed appliances: %w", err)
		}
		if err := keep.Create(&seedTransportTypes).Error; err != nil {
			return fmt.Errorf("seed transport types: %w", err)
		}
		if err := keep.Create(&seedTransports).Error; err != nil {
			return fmt.Errorf("seed transports: %w", err)
		}
		if err := keep.Create(&seedFoodTypes).Error; err != nil {
			return fmt.Errorf("seed food types: %w", err)
		}
		if err := keep.Create(&seedFoods).Error; err != nil {
			return fmt.Errorf("seed foods: %w", err)
		}
		return nil
	})
}

var (
	seedApplianceTypes = []domain.ApplianceType{
		{ID: 1, Category: "Kitchen"},
		{ID: 2, Category: "Laundry"},
		{ID: 3, Category: "Entertainment"},
		{ID: 4, Category: "Heating and Cooling"},
	}

	// AverageKWH is energy per hour of use.
	seedAppliances = []domain.Appliance{
		{ID: 1, Name: "Kettle", AverageKWH: 2.2, ApplianceTypeID: 1},
		{ID: 2, Name: "Microwave", AverageKWH: 1.1, ApplianceTypeID: 1},
		{ID: 3, Name: "Electric Oven", AverageKWH: 2.4, ApplianceTypeID: 1},
		{ID: 4, Name: "Dishwasher", AverageKWH: 1.5, ApplianceTypeID: 1},
		{ID: 5, Name: "Washing Machine", AverageKWH: 2.0, ApplianceTypeID: 2},
		{ID: 6, Name: "Tumble Dryer", AverageKWH: 2.5, ApplianceTypeID: 2},
		{ID: 7, Name: "Television", AverageKWH: 0.1, ApplianceTypeID: 3},
		{ID: 8, Name: "Games Console", AverageKWH: 0.15, ApplianceTypeID: 3},
		{ID: 9, Name: "Electric Heater", AverageKWH: 2.0, ApplianceTypeID: 4},
		{ID: 10, Name: "Fan", AverageKWH: 0.05, ApplianceTypeID: 4},
	}

	seedTransportTypes = []domain.TransportType{
		{ID: 1, Name: "Personal"},
		{ID: 2, Name: "Public"},
	}

	// CO2ePerMile is kg CO2e per passenger mile.
	seedTransports = []domain.Transport{
		{ID: 1, Name: "Petrol Car", CO2ePerMile: 0.2817, FuelType: "Petrol", TransportTypeID: 1},
		{ID: 2, Name: "Diesel Car", CO2ePerMile: 0.2720, FuelType: "Diesel", TransportTypeID: 1},
		{ID: 3, Name: "Electric Car", CO2ePerMile: 0.0790, FuelType: "Electric", TransportTypeID: 1},
		{ID: 4, Name: "Motorbike", CO2ePerMile: 0.1829, FuelType: "Petrol", TransportTypeID: 1},
		{ID: 5, Name: "Bus", CO2ePerMile: 0.1563, FuelType: "Diesel", TransportTypeID: 2},
		{ID: 6, Name: "National Rail", CO2ePerMile: 0.0571, FuelType: "Electric", TransportTypeID: 2},
		{ID: 7, Name: "Underground", CO2ePerMile: 0.0448, FuelType: "Electric", TransportTypeID: 2},
	}

	seedFoodTypes = []domain.FoodType{
		{ID: 1, Name: "Meat"},
		{ID: 2, Name: "Dairy"},
		{ID: 3, Name: "Grains"},
		{ID: 4, Name: "Vegetables"},
		{ID: 5, Name: "Fruit"},
	}

	// CO2ePerKg is kg CO2e per kg of product.
	seedFoods = []domain.Food{
		{ID: 1, Product: "Beef", CO2ePerKg: 99.48, FoodTypeID: 1},
		{ID: 2, Product: "Lamb", CO2ePerKg: 39.72, FoodTypeID: 1},
		{ID: 3, Product: "Chicken", CO2ePerKg: 9.87, FoodTypeID: 1},
		{ID: 4, Product: "Cheese", CO2ePerKg: 23.88, FoodTypeID: 2},
		{ID: 5, Product: "Milk", CO2ePerKg: 3.15, FoodTypeID: 2},
		{ID: 6, Product: "Rice", CO2ePerKg: 4.45, FoodTypeID: 3},
		{ID: 7, Product: "Wheat", CO2ePerKg: 1.57, FoodTypeID: 3},
		{ID: 8, Product: "Potatoes", CO2ePerKg: 0.46, FoodTypeID: 4},
		{ID: 9, Product: "Tomatoes", CO2ePerKg: 2.09, FoodTypeID: 4},
		{ID: 10, Product: "Apples", CO2ePerKg: 0.43, FoodTypeID: 5},
		{ID: 11, Product: "Bananas", CO2ePerKg: 0.86, FoodTypeID: 5},
	}
)
