package repository

import (
	"errors"

	"github.com/voltride/storefront/internal/models"

	"gorm.io/gorm"
)

// OrderListFilter 订单列表过滤条件
type OrderListFilter struct {
	Phone    string
	Status   string
	Page     int
	PageSize int
}

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByOrderNoAndPhone(orderNo, phone string) (*models.Order, error)
	ListByPhone(filter OrderListFilter) ([]models.Order, int64, error)
	UpdateStatus(id uint, status string, updates map[string]interface{}) error
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create 创建订单与订单项
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	order.Items = items
	return nil
}

// GetByID 按ID获取订单
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Preload("DeliveryZone").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNoAndPhone 按订单编号+电话获取订单（无登录态的取单凭证）
func (r *GormOrderRepository) GetByOrderNoAndPhone(orderNo, phone string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Preload("DeliveryZone").
		Where("order_no = ? AND phone = ?", orderNo, phone).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListByPhone 按电话列出订单
func (r *GormOrderRepository) ListByPhone(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{}).Where("phone = ?", filter.Phone)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus 更新订单状态
func (r *GormOrderRepository) UpdateStatus(id uint, status string, updates map[string]interface{}) error {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = status
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error
}
