package service

import (
	"strings"

	"github.com/voltride/storefront/internal/models"
)

// VariationDimension 规格维度（属性轴及其可选值）
type VariationDimension struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// VariationDimensions 从规格列表推导规格维度
// 维度顺序按跨规格首次出现，维度内取值按首次出现去重。
// 无规格商品返回空列表（只通过默认规格销售，无需选择界面）。
func VariationDimensions(variants []models.ProductVariant) []VariationDimension {
	dimensions := make([]VariationDimension, 0)
	index := make(map[string]int)
	seen := make(map[string]map[string]bool)

	for _, variant := range variants {
		for _, av := range variant.AttributeValues {
			name := strings.TrimSpace(av.Attribute)
			if name == "" {
				continue
			}
			pos, ok := index[name]
			if !ok {
				pos = len(dimensions)
				index[name] = pos
				dimensions = append(dimensions, VariationDimension{Name: name})
				seen[name] = make(map[string]bool)
			}
			value := strings.TrimSpace(av.Value)
			if value == "" || seen[name][value] {
				continue
			}
			seen[name][value] = true
			dimensions[pos].Values = append(dimensions[pos].Values, value)
		}
	}
	return dimensions
}

// ResolveVariant 按用户选择解析唯一规格
// 选择数与维度数不等时返回 nil（不做部分匹配的猜测）；
// 否则返回属性取值与选择逐项一致的规格，不存在时同样返回 nil。
// 纯函数：结果只取决于三个入参。
func ResolveVariant(variants []models.ProductVariant, dimensions []VariationDimension, selection map[string]string) *models.ProductVariant {
	if len(selection) != len(dimensions) {
		return nil
	}
	for i := range variants {
		if variantMatchesSelection(&variants[i], selection) {
			return &variants[i]
		}
	}
	return nil
}

func variantMatchesSelection(variant *models.ProductVariant, selection map[string]string) bool {
	if variant == nil || len(variant.AttributeValues) == 0 {
		return false
	}
	for _, av := range variant.AttributeValues {
		selected, ok := selection[av.Attribute]
		if !ok || selected != av.Value {
			return false
		}
	}
	return true
}
