package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/voltride/storefront/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newProductTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.ProductVariant{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func TestProductRepositoryListOnlyActive(t *testing.T) {
	db := newProductTestDB(t, "product_repo_list")
	repo := NewProductRepository(db)

	category := models.Category{Slug: "scooters", Name: "Trottinettes"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	active := models.Product{CategoryID: category.ID, Slug: "active", SKU: "SKU-A", Name: "Active", IsActive: true}
	inactive := models.Product{CategoryID: category.ID, Slug: "inactive", SKU: "SKU-I", Name: "Inactive", IsActive: false}
	if err := db.Create(&active).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := db.Create(&inactive).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	products, total, err := repo.List(ProductListFilter{OnlyActive: true})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].Slug != "active" {
		t.Fatalf("unexpected list result: total=%d products=%+v", total, products)
	}
}

func TestProductRepositoryGetBySlugFiltersInactiveVariants(t *testing.T) {
	db := newProductTestDB(t, "product_repo_slug")
	repo := NewProductRepository(db)

	category := models.Category{Slug: "scooters", Name: "Trottinettes"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := models.Product{
		CategoryID: category.ID,
		Slug:       "v8-pro",
		SKU:        "VR-V8",
		Name:       "V8 Pro",
		IsActive:   true,
		Variants: []models.ProductVariant{
			{SKU: "VR-V8-A", StockQuantity: 5, IsActive: true, SortOrder: 1},
			{SKU: "VR-V8-B", StockQuantity: 5, IsActive: false, SortOrder: 2},
		},
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	got, err := repo.GetBySlug("v8-pro", true)
	if err != nil {
		t.Fatalf("GetBySlug error: %v", err)
	}
	if got == nil {
		t.Fatalf("expected product, got nil")
	}
	if len(got.Variants) != 1 || got.Variants[0].SKU != "VR-V8-A" {
		t.Fatalf("expected only active variants preloaded, got %+v", got.Variants)
	}
}

func TestProductRepositoryGetBySlugMissing(t *testing.T) {
	db := newProductTestDB(t, "product_repo_missing")
	repo := NewProductRepository(db)

	got, err := repo.GetBySlug("nope", true)
	if err != nil {
		t.Fatalf("GetBySlug error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing slug, got %+v", got)
	}
}

func TestProductRepositoryGetVariantByIDScopedToProduct(t *testing.T) {
	db := newProductTestDB(t, "product_repo_variant")
	repo := NewProductRepository(db)

	category := models.Category{Slug: "scooters", Name: "Trottinettes"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := models.Product{
		CategoryID: category.ID,
		Slug:       "v8-pro",
		SKU:        "VR-V8",
		Name:       "V8 Pro",
		IsActive:   true,
		Variants:   []models.ProductVariant{{SKU: "VR-V8-A", StockQuantity: 5, IsActive: true}},
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	variant, err := repo.GetVariantByID(product.ID, product.Variants[0].ID)
	if err != nil {
		t.Fatalf("GetVariantByID error: %v", err)
	}
	if variant == nil || variant.SKU != "VR-V8-A" {
		t.Fatalf("unexpected variant: %+v", variant)
	}

	// 规格必须属于指定商品
	other, err := repo.GetVariantByID(product.ID+1, product.Variants[0].ID)
	if err != nil {
		t.Fatalf("GetVariantByID error: %v", err)
	}
	if other != nil {
		t.Fatalf("expected nil for mismatched product, got %+v", other)
	}
}
