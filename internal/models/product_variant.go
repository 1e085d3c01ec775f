package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ProductVariant 商品规格表（颜色/续航等属性组合，独立库存池）
type ProductVariant struct {
	ID              uint            `gorm:"primarykey" json:"id"`                             // 主键
	ProductID       uint            `gorm:"not null;index" json:"product_id"`                 // 商品ID
	SKU             string          `gorm:"type:varchar(64)" json:"sku"`                      // SKU 覆盖（空则继承商品编码）
	PriceCentimes   *Money          `gorm:"default:null" json:"price_centimes"`               // 价格覆盖（空则继承商品基准价）
	StockQuantity   int             `gorm:"not null;default:0" json:"stock_quantity"`         // 规格库存（不与商品基准库存共享）
	IsActive        bool            `gorm:"default:true;index" json:"is_active"`              // 是否启用
	AttributeValues AttributeValues `gorm:"type:json" json:"attribute_values"`                // 属性取值（有序）
	SortOrder       int             `gorm:"default:0;index" json:"sort_order"`                // 排序权重
	CreatedAt       time.Time       `gorm:"index" json:"created_at"`                          // 创建时间
	UpdatedAt       time.Time       `json:"updated_at"`                                       // 更新时间
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`                                   // 软删除时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (ProductVariant) TableName() string {
	return "product_variants"
}

// EffectivePrice 返回规格生效价格，未覆盖时继承商品基准价
func (v *ProductVariant) EffectivePrice(product *Product) Money {
	if v != nil && v.PriceCentimes != nil {
		return *v.PriceCentimes
	}
	if product != nil {
		return product.PriceCentimes
	}
	return 0
}

// EffectiveSKU 返回规格生效编码，未覆盖时继承商品编码
func (v *ProductVariant) EffectiveSKU(product *Product) string {
	if v != nil && strings.TrimSpace(v.SKU) != "" {
		return v.SKU
	}
	if product != nil {
		return product.SKU
	}
	return ""
}

// Label 将属性取值拼接为展示文案（如 "Red / M"）
func (v *ProductVariant) Label() string {
	if v == nil || len(v.AttributeValues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(v.AttributeValues))
	for _, av := range v.AttributeValues {
		value := strings.TrimSpace(av.Value)
		if value == "" {
			continue
		}
		parts = append(parts, value)
	}
	return strings.Join(parts, " / ")
}
