package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表（电动滑板车）
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                  // 主键
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`                     // 分类ID
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"`                      // 唯一标识
	SKU           string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"sku"`      // 商品编码
	Name          string         `gorm:"not null" json:"name"`                                  // 商品名称
	Description   string         `gorm:"type:text" json:"description"`                          // 商品描述
	PriceCentimes Money          `gorm:"not null;default:0" json:"price_centimes"`              // 基准价格（最小货币单位）
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"`              // 基准库存（无规格商品使用）
	Images        StringArray    `gorm:"type:json" json:"images"`                               // 图片数组
	IsActive      bool           `gorm:"default:true;index" json:"is_active"`                   // 是否上架
	SortOrder     int            `gorm:"default:0;index" json:"sort_order"`                     // 排序权重
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                               // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                            // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                        // 软删除时间

	// 关联
	Category Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`  // 规格列表
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// Thumbnail 返回首图作为缩略图，没有图片时返回空串
func (p *Product) Thumbnail() string {
	if p == nil || len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// ActiveVariants 返回启用的规格列表（保持排序）
func (p *Product) ActiveVariants() []ProductVariant {
	if p == nil || len(p.Variants) == 0 {
		return nil
	}
	active := make([]ProductVariant, 0, len(p.Variants))
	for i := range p.Variants {
		if p.Variants[i].IsActive {
			active = append(active, p.Variants[i])
		}
	}
	return active
}
