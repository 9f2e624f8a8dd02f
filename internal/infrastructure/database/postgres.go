package database

import (
	"fmt"
	"log"
	"time"

	"github.com/appdotbuilder/pos-system-9aa7/internal/config"
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/entity"
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/enum"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.SSLMode == "disable" {
		// Local development gets query logging
		logLevel = logger.Warn
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate runs auto-migration for all entities
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.IdempotencyKey{},
	)
}

// SeedDefaultData inserts the default users and sample catalog. Users are
// seeded only when the users table is empty, products only when the
// products table is empty, so existing data is never touched.
func SeedDefaultData(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&entity.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount == 0 {
		hashed, err := utils.HashPassword("password")
		if err != nil {
			return err
		}

		users := []entity.User{
			{Name: "Admin User", Email: "admin@pos.com", Password: hashed, Role: enum.RoleAdministrator},
			{Name: "Cashier User", Email: "cashier@pos.com", Password: hashed, Role: enum.RoleCashier},
			{Name: "Inventory Manager", Email: "inventory@pos.com", Password: hashed, Role: enum.RoleInventoryManager},
		}
		if err := db.Create(&users).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d default users", len(users))
	}

	var productCount int64
	if err := db.Model(&entity.Product{}).Count(&productCount).Error; err != nil {
		return err
	}

	if productCount == 0 {
		products := sampleProducts()
		if err := db.Create(&products).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d sample products", len(products))
	}

	return nil
}

func sampleProducts() []entity.Product {
	str := func(s string) *string { return &s }

	return []entity.Product{
		{
			Name:              "iPhone 15 Pro",
			Description:       str("Latest Apple smartphone with titanium design"),
			SKU:               "IPH-15-PRO-001",
			Price:             99999,
			Cost:              65000,
			StockQuantity:     25,
			LowStockThreshold: 5,
			Category:          str("Electronics"),
			IsActive:          true,
		},
		{
			Name:              "Samsung Galaxy S24",
			Description:       str("Samsung flagship with AI features"),
			SKU:               "SAM-S24-001",
			Price:             89999,
			Cost:              58000,
			StockQuantity:     30,
			LowStockThreshold: 5,
			Category:          str("Electronics"),
			IsActive:          true,
		},
		{
			Name:              "MacBook Air M3",
			Description:       str("13-inch laptop with M3 chip"),
			SKU:               "MBA-M3-13-001",
			Price:             129999,
			Cost:              85000,
			StockQuantity:     15,
			LowStockThreshold: 3,
			Category:          str("Electronics"),
			IsActive:          true,
		},
		{
			Name:              "Nike Air Max 270",
			Description:       str("Comfortable running shoes"),
			SKU:               "NIK-AM270-001",
			Price:             14999,
			Cost:              7500,
			StockQuantity:     50,
			LowStockThreshold: 10,
			Category:          str("Clothing"),
			IsActive:          true,
		},
		{
			Name:              "Levi's 501 Jeans",
			Description:       str("Classic straight fit jeans"),
			SKU:               "LEV-501-001",
			Price:             7999,
			Cost:              3500,
			StockQuantity:     8,
			LowStockThreshold: 10,
			Category:          str("Clothing"),
			IsActive:          true,
		},
		{
			Name:              "Starbucks Pike Place Coffee",
			Description:       str("Medium roast ground coffee, 1lb bag"),
			SKU:               "SBX-PP-1LB-001",
			Price:             1299,
			Cost:              650,
			StockQuantity:     100,
			LowStockThreshold: 20,
			Category:          str("Food & Beverage"),
			IsActive:          true,
		},
		{
			Name:              "Wireless Bluetooth Headphones",
			Description:       str("Noise-cancelling over-ear headphones"),
			SKU:               "WBH-NC-001",
			Price:             19999,
			Cost:              12000,
			StockQuantity:     3,
			LowStockThreshold: 5,
			Category:          str("Electronics"),
			IsActive:          true,
		},
		{
			Name:              "Organic Green Tea",
			Description:       str("Premium loose leaf green tea, 20 bags"),
			SKU:               "OGT-20-001",
			Price:             899,
			Cost:              450,
			StockQuantity:     75,
			LowStockThreshold: 15,
			Category:          str("Food & Beverage"),
			IsActive:          true,
		},
		{
			Name:              "Desk Lamp LED",
			Description:       str("Adjustable LED desk lamp with USB charging"),
			SKU:               "DL-LED-USB-001",
			Price:             4599,
			Cost:              2200,
			StockQuantity:     20,
			LowStockThreshold: 5,
			Category:          str("Home & Office"),
			IsActive:          true,
		},
		{
			Name:              "Yoga Mat Premium",
			Description:       str("Non-slip exercise mat, 6mm thick"),
			SKU:               "YM-PREM-001",
			Price:             3999,
			Cost:              1800,
			StockQuantity:     2,
			LowStockThreshold: 8,
			Category:          str("Sports & Fitness"),
			IsActive:          true,
		},
	}
}
