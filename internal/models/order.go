package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID                  uint           `gorm:"primarykey" json:"id"`                            // 主键
	OrderNo             string         `gorm:"uniqueIndex;not null" json:"order_no"`            // 订单编号
	Phone               string         `gorm:"index;not null" json:"phone"`                     // 联系电话
	City                string         `gorm:"not null" json:"city"`                            // 收货城市
	Note                string         `gorm:"type:text" json:"note,omitempty"`                 // 买家备注
	Status              string         `gorm:"index;not null" json:"status"`                    // 订单状态
	Currency            string         `gorm:"not null" json:"currency"`                        // 币种
	DeliveryZoneID      *uint          `gorm:"index" json:"delivery_zone_id,omitempty"`         // 配送区域ID
	SubtotalCentimes    Money          `gorm:"not null;default:0" json:"subtotal_centimes"`     // 商品小计
	DeliveryFeeCentimes Money          `gorm:"not null;default:0" json:"delivery_fee_centimes"` // 运费
	TotalCentimes       Money          `gorm:"not null;default:0" json:"total_centimes"`        // 合计金额
	ClientIP            string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`     // 下单客户端IP
	ConfirmedAt         *time.Time     `gorm:"index" json:"confirmed_at"`                       // 确认时间
	CreatedAt           time.Time      `gorm:"index" json:"created_at"`                         // 创建时间
	UpdatedAt           time.Time      `gorm:"index" json:"updated_at"`                         // 更新时间
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`                                  // 软删除时间

	// 关联
	Items        []OrderItem   `gorm:"foreignKey:OrderID" json:"items,omitempty"`              // 订单项
	DeliveryZone *DeliveryZone `gorm:"foreignKey:DeliveryZoneID" json:"delivery_zone,omitempty"` // 配送区域
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
