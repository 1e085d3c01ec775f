package repository

import (
	"errors"

	"github.com/voltride/storefront/internal/models"

	"gorm.io/gorm"
)

// DeliveryZoneRepository 配送区域数据访问接口
type DeliveryZoneRepository interface {
	ListActive() ([]models.DeliveryZone, error)
	GetByID(id uint) (*models.DeliveryZone, error)
	Create(zone *models.DeliveryZone) error
}

// GormDeliveryZoneRepository GORM 实现
type GormDeliveryZoneRepository struct {
	db *gorm.DB
}

// NewDeliveryZoneRepository 创建配送区域仓库
func NewDeliveryZoneRepository(db *gorm.DB) *GormDeliveryZoneRepository {
	return &GormDeliveryZoneRepository{db: db}
}

// ListActive 启用中的配送区域列表
func (r *GormDeliveryZoneRepository) ListActive() ([]models.DeliveryZone, error) {
	var zones []models.DeliveryZone
	if err := r.db.Where("is_active = ?", true).Order("sort_order DESC, id ASC").Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

// GetByID 按ID获取配送区域
func (r *GormDeliveryZoneRepository) GetByID(id uint) (*models.DeliveryZone, error) {
	var zone models.DeliveryZone
	if err := r.db.First(&zone, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &zone, nil
}

// Create 创建配送区域
func (r *GormDeliveryZoneRepository) Create(zone *models.DeliveryZone) error {
	return r.db.Create(zone).Error
}
