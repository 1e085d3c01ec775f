package main

import (
	"context"

	"github.com/voltride/storefront/internal/cache"
	"github.com/voltride/storefront/internal/config"
	"github.com/voltride/storefront/internal/logger"
	"github.com/voltride/storefront/internal/models"
	"github.com/voltride/storefront/internal/service"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Slug: "scooters", Name: "Trottinettes électriques", SortOrder: 10},
		{Slug: "accessories", Name: "Accessoires", SortOrder: 5},
		{Slug: "spare-parts", Name: "Pièces détachées", SortOrder: 1},
	}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"scooters", "accessories", "spare-parts"}).Find(&categoryList).Error; err != nil {
		stdLog.Fatalf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	// 添加配送区域
	zones := []models.DeliveryZone{
		{Name: "Alger Centre", FeeCentimes: 40000, SortOrder: 30},
		{Name: "Blida", FeeCentimes: 60000, SortOrder: 20},
		{Name: "Oran", FeeCentimes: 80000, SortOrder: 10},
		{Name: "Constantine", FeeCentimes: 90000, SortOrder: 5},
	}
	for _, zone := range zones {
		var existing models.DeliveryZone
		if err := models.DB.Where("name = ?", zone.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&zone).Error; err != nil {
				stdLog.Printf("Failed to create delivery zone %s: %v", zone.Name, err)
			} else {
				stdLog.Printf("Created delivery zone: %s", zone.Name)
			}
		} else {
			stdLog.Printf("Delivery zone already exists: %s", zone.Name)
		}
	}

	// 添加商品（带规格的滑板车 + 无规格配件）
	products := []models.Product{
		{
			CategoryID:    categoryIDs["scooters"],
			Slug:          "voltride-v8-pro",
			SKU:           "VR-V8-PRO",
			Name:          "VoltRide V8 Pro",
			Description:   "Trottinette électrique urbaine, moteur 350W/500W, autonomie jusqu'à 45 km.",
			PriceCentimes: 8_990_000,
			Images:        models.StringArray{"/uploads/v8-pro-front.jpg", "/uploads/v8-pro-side.jpg"},
			IsActive:      true,
			SortOrder:     30,
			Variants: []models.ProductVariant{
				{
					SKU:           "VR-V8-PRO-BLK-350",
					StockQuantity: 12,
					IsActive:      true,
					SortOrder:     20,
					AttributeValues: models.AttributeValues{
						{AttributeID: 1, Attribute: "Couleur", ID: 11, Value: "Noir"},
						{AttributeID: 2, Attribute: "Moteur", ID: 21, Value: "350W"},
					},
				},
				{
					SKU:           "VR-V8-PRO-BLK-500",
					PriceCentimes: moneyPtr(9_990_000),
					StockQuantity: 6,
					IsActive:      true,
					SortOrder:     15,
					AttributeValues: models.AttributeValues{
						{AttributeID: 1, Attribute: "Couleur", ID: 11, Value: "Noir"},
						{AttributeID: 2, Attribute: "Moteur", ID: 22, Value: "500W"},
					},
				},
				{
					SKU:           "VR-V8-PRO-GRY-350",
					StockQuantity: 8,
					IsActive:      true,
					SortOrder:     10,
					AttributeValues: models.AttributeValues{
						{AttributeID: 1, Attribute: "Couleur", ID: 12, Value: "Gris"},
						{AttributeID: 2, Attribute: "Moteur", ID: 21, Value: "350W"},
					},
				},
			},
		},
		{
			CategoryID:    categoryIDs["scooters"],
			Slug:          "voltride-city-lite",
			SKU:           "VR-CITY-LITE",
			Name:          "VoltRide City Lite",
			Description:   "Modèle compact et pliable pour les trajets quotidiens.",
			PriceCentimes: 5_490_000,
			Images:        models.StringArray{"/uploads/city-lite.jpg"},
			IsActive:      true,
			SortOrder:     20,
			Variants: []models.ProductVariant{
				{
					SKU:           "VR-CITY-LITE-BLK",
					StockQuantity: 20,
					IsActive:      true,
					SortOrder:     10,
					AttributeValues: models.AttributeValues{
						{AttributeID: 1, Attribute: "Couleur", ID: 11, Value: "Noir"},
					},
				},
				{
					SKU:           "VR-CITY-LITE-WHT",
					StockQuantity: 0,
					IsActive:      true,
					SortOrder:     5,
					AttributeValues: models.AttributeValues{
						{AttributeID: 1, Attribute: "Couleur", ID: 13, Value: "Blanc"},
					},
				},
			},
		},
		{
			CategoryID:    categoryIDs["accessories"],
			Slug:          "voltride-helmet",
			SKU:           "VR-HELMET",
			Name:          "Casque VoltRide",
			Description:   "Casque homologué, taille unique réglable.",
			PriceCentimes: 450_000,
			StockQuantity: 50,
			Images:        models.StringArray{"/uploads/helmet.jpg"},
			IsActive:      true,
			SortOrder:     10,
		},
	}

	seeded := make([]string, 0, len(products))
	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("Created product: %s (%d variants)", product.Slug, len(product.Variants))
				seeded = append(seeded, product.Slug)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Slug)
		}
	}

	// 目录有变更时失效详情缓存
	if len(seeded) > 0 {
		if err := cache.InitRedis(&cfg.Redis); err != nil {
			stdLog.Printf("Redis unavailable, skipping cache invalidation: %v", err)
		} else if cache.Enabled() {
			productService := service.NewProductService(nil, nil)
			for _, slug := range seeded {
				productService.InvalidateDetail(context.Background(), slug)
			}
		}
	}

	stdLog.Printf("Seed completed")
}

func moneyPtr(value models.Money) *models.Money {
	return &value
}
