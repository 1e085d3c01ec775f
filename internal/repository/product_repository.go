package repository

import (
	"errors"
	"strings"

	"github.com/voltride/storefront/internal/models"

	"gorm.io/gorm"
)

// ProductListFilter 商品列表过滤条件
type ProductListFilter struct {
	CategoryID   uint
	Search       string
	OnlyActive   bool
	WithCategory bool
	Page         int
	PageSize     int
}

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetBySlug(slug string, onlyActive bool) (*models.Product, error)
	GetByID(id uint) (*models.Product, error)
	GetVariantByID(productID, variantID uint) (*models.ProductVariant, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction 执行事务
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

func (r *GormProductRepository) preloadVariants(query *gorm.DB, onlyActive bool) *gorm.DB {
	if onlyActive {
		return query.Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("sort_order DESC, id ASC")
		})
	}
	return query.Preload("Variants", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order DESC, id ASC")
	})
}

// List 商品列表
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.WithCategory {
		query = query.Preload("Category")
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	query = r.preloadVariants(query, filter.OnlyActive)
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("slug LIKE ? OR name LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("sort_order DESC, created_at DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetBySlug 按唯一标识获取商品
func (r *GormProductRepository) GetBySlug(slug string, onlyActive bool) (*models.Product, error) {
	var product models.Product
	query := r.db.Preload("Category")
	query = r.preloadVariants(query, onlyActive)
	query = query.Where("slug = ?", slug)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetByID 按ID获取商品
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	query := r.preloadVariants(r.db, false)
	if err := query.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetVariantByID 按ID获取商品规格，需属于指定商品
func (r *GormProductRepository) GetVariantByID(productID, variantID uint) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	err := r.db.Where("id = ? AND product_id = ?", variantID, productID).First(&variant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 更新商品
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}
