package repository

import (
	"errors"

	"github.com/voltride/storefront/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository 分类数据访问接口
type CategoryRepository interface {
	List() ([]models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	Create(category *models.Category) error
}

// GormCategoryRepository GORM 实现
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// List 分类列表
func (r *GormCategoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("sort_order DESC, id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetBySlug 按唯一标识获取分类
func (r *GormCategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Create 创建分类
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}
