package models

import (
	"encoding/json"
	"fmt"

	"github.com/voltride/storefront/internal/constants"
)

// CartLine 购物车行
// 除 Quantity 外的字段都是加入购物车时刻的快照，后续目录变动不回写。
type CartLine struct {
	ProductID     uint   `json:"product_id"`              // 商品ID
	VariantID     *uint  `json:"variant_id"`              // 规格ID（历史数据或无规格商品为空）
	SKU           string `json:"sku"`                     // 编码快照
	Name          string `json:"name"`                    // 名称快照
	PriceCentimes Money  `json:"price_centimes"`          // 单价快照（最小货币单位）
	ThumbnailURL  string `json:"thumbnail_url"`           // 缩略图快照
	Quantity      int    `json:"quantity"`                // 数量
	StockQuantity int    `json:"stock_quantity"`          // 库存快照（数量上限）
	VariantLabel  string `json:"variant_label,omitempty"` // 规格文案（如 "Red / 500W"）
}

// Key 返回 (商品, 规格) 去重键，无规格按空规格归组
func (l CartLine) Key() string {
	if l.VariantID == nil {
		return fmt.Sprintf("%d:-", l.ProductID)
	}
	return fmt.Sprintf("%d:%d", l.ProductID, *l.VariantID)
}

// TotalCentimes 返回行小计
func (l CartLine) TotalCentimes() Money {
	return l.PriceCentimes.Mul(l.Quantity)
}

// CartState 购物车持久化结构（带版本号的完整快照）
type CartState struct {
	Version int        `json:"version"`
	Lines   []CartLine `json:"lines"`
}

// EmptyCartState 返回当前版本的空购物车
func EmptyCartState() CartState {
	return CartState{Version: constants.CartSchemaVersion, Lines: []CartLine{}}
}

// TotalItems 返回所有行数量之和（读时重算，不落盘）
func (s CartState) TotalItems() int {
	total := 0
	for _, line := range s.Lines {
		total += line.Quantity
	}
	return total
}

// SubtotalCentimes 返回所有行 单价×数量 之和（整数运算）
func (s CartState) SubtotalCentimes() Money {
	var subtotal Money
	for _, line := range s.Lines {
		subtotal += line.TotalCentimes()
	}
	return subtotal
}

// FindLine 按 (商品, 规格) 键查找行，返回下标，未找到返回 -1
func (s CartState) FindLine(productID uint, variantID *uint) int {
	key := CartLine{ProductID: productID, VariantID: variantID}.Key()
	for i := range s.Lines {
		if s.Lines[i].Key() == key {
			return i
		}
	}
	return -1
}

// EncodeCartState 序列化购物车快照
func EncodeCartState(state CartState) ([]byte, error) {
	state.Version = constants.CartSchemaVersion
	if state.Lines == nil {
		state.Lines = []CartLine{}
	}
	return json.Marshal(state)
}

// DecodeCartState 反序列化并迁移购物车快照
// 旧版本数据（v1 行缺少 variant_id，或更早的裸数组格式）按无规格行迁移；
// 损坏数据直接回退为空购物车，读取永不报错。
func DecodeCartState(raw []byte) CartState {
	if len(raw) == 0 {
		return EmptyCartState()
	}

	var state CartState
	if err := json.Unmarshal(raw, &state); err != nil {
		// 引入版本号之前购物车落盘为裸行数组
		var lines []CartLine
		if err := json.Unmarshal(raw, &lines); err != nil {
			return EmptyCartState()
		}
		state = CartState{Version: 1, Lines: lines}
	}
	if state.Version <= 0 {
		state.Version = 1
	}
	if state.Version < constants.CartSchemaVersion {
		state = migrateCartState(state)
	}
	state.Version = constants.CartSchemaVersion
	if state.Lines == nil {
		state.Lines = []CartLine{}
	}
	return state
}

// migrateCartState 将旧版本快照归一化到当前版本
// v1 -> v2：缺少 variant_id 的行保留为无规格行；数量重新夹取到库存快照内。
func migrateCartState(old CartState) CartState {
	lines := make([]CartLine, 0, len(old.Lines))
	for _, line := range old.Lines {
		if line.ProductID == 0 || line.StockQuantity <= 0 {
			continue
		}
		if line.Quantity < 1 {
			line.Quantity = 1
		}
		if line.Quantity > line.StockQuantity {
			line.Quantity = line.StockQuantity
		}
		lines = append(lines, line)
	}
	return CartState{Version: constants.CartSchemaVersion, Lines: lines}
}
