package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表
// 单价由服务端在下单事务内从商品目录重新取值，客户端快照只用于展示。
type OrderItem struct {
	ID                uint           `gorm:"primarykey" json:"id"`                          // 主键
	OrderID           uint           `gorm:"index;not null" json:"order_id"`                // 订单ID
	ProductID         uint           `gorm:"index;not null" json:"product_id"`              // 商品ID
	VariantID         *uint          `gorm:"index" json:"variant_id"`                       // 规格ID（无规格商品为空）
	SKU               string         `gorm:"type:varchar(64)" json:"sku"`                   // 编码快照
	Name              string         `gorm:"not null" json:"name"`                          // 名称快照
	VariantLabel      string         `json:"variant_label,omitempty"`                       // 规格文案快照
	UnitPriceCentimes Money          `gorm:"not null;default:0" json:"unit_price_centimes"` // 单价（服务端计价）
	Quantity          int            `gorm:"not null" json:"quantity"`                      // 数量
	TotalCentimes     Money          `gorm:"not null;default:0" json:"total_centimes"`      // 小计
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt         time.Time      `json:"updated_at"`                                    // 更新时间
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
