package service

import (
	"context"
	"sync"

	"github.com/voltride/storefront/internal/models"
	"github.com/voltride/storefront/internal/repository"
)

// CartService 购物车服务
// 五个变更操作都遵循「读快照 → 计算新快照 → 整体写回」的状态迁移，
// 同一购物车的迁移通过按购物车ID分键的互斥锁串行化，避免丢失更新。
// 跨进程并发写仍是后写覆盖，属已接受的局限。
type CartService struct {
	cartRepo repository.CartRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *CartService) cartLock(cartID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[cartID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[cartID] = lock
	}
	return lock
}

// Get 读取购物车当前快照
func (s *CartService) Get(ctx context.Context, cartID string) (models.CartState, error) {
	return s.cartRepo.Load(ctx, cartID)
}

// AddItem 加入购物车
// 可购库存为规格库存（传入规格时）或商品基准库存；库存不足时静默忽略，
// 调用方界面应当已禁用入口。已有同 (商品, 规格) 行时数量 +1 并夹取到库存
// 快照内；新行快照规格的编码/价格/名称/缩略图/库存。
func (s *CartService) AddItem(ctx context.Context, cartID string, product *models.Product, variant *models.ProductVariant) (models.CartState, error) {
	if product == nil {
		return s.cartRepo.Load(ctx, cartID)
	}

	lock := s.cartLock(cartID)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.cartRepo.Load(ctx, cartID)
	if err != nil {
		return state, err
	}

	availableStock := product.StockQuantity
	var variantID *uint
	if variant != nil {
		availableStock = variant.StockQuantity
		variantID = &variant.ID
	}
	if availableStock <= 0 {
		// 无货守卫：不是错误，直接保持现状
		return state, nil
	}

	if idx := state.FindLine(product.ID, variantID); idx >= 0 {
		line := &state.Lines[idx]
		line.Quantity = clampQuantity(line.Quantity+1, line.StockQuantity)
	} else {
		state.Lines = append(state.Lines, models.CartLine{
			ProductID:     product.ID,
			VariantID:     variantID,
			SKU:           variant.EffectiveSKU(product),
			Name:          product.Name,
			PriceCentimes: variant.EffectivePrice(product),
			ThumbnailURL:  product.Thumbnail(),
			Quantity:      1,
			StockQuantity: availableStock,
			VariantLabel:  variant.Label(),
		})
	}

	if err := s.cartRepo.Save(ctx, cartID, state); err != nil {
		return state, err
	}
	return state, nil
}

// UpdateQuantity 设置购物车行数量
// 数量 ≤ 0 时整行移除，否则夹取到库存快照内；不存在的行静默忽略。
func (s *CartService) UpdateQuantity(ctx context.Context, cartID string, productID uint, quantity int, variantID *uint) (models.CartState, error) {
	lock := s.cartLock(cartID)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.cartRepo.Load(ctx, cartID)
	if err != nil {
		return state, err
	}

	idx := state.FindLine(productID, variantID)
	if idx < 0 {
		return state, nil
	}
	if quantity <= 0 {
		state.Lines = append(state.Lines[:idx], state.Lines[idx+1:]...)
	} else {
		line := &state.Lines[idx]
		line.Quantity = clampQuantity(quantity, line.StockQuantity)
	}

	if err := s.cartRepo.Save(ctx, cartID, state); err != nil {
		return state, err
	}
	return state, nil
}

// RemoveItem 无条件移除购物车行
func (s *CartService) RemoveItem(ctx context.Context, cartID string, productID uint, variantID *uint) (models.CartState, error) {
	lock := s.cartLock(cartID)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.cartRepo.Load(ctx, cartID)
	if err != nil {
		return state, err
	}

	idx := state.FindLine(productID, variantID)
	if idx < 0 {
		return state, nil
	}
	state.Lines = append(state.Lines[:idx], state.Lines[idx+1:]...)

	if err := s.cartRepo.Save(ctx, cartID, state); err != nil {
		return state, err
	}
	return state, nil
}

// Clear 清空购物车（下单成功后自动触发）
func (s *CartService) Clear(ctx context.Context, cartID string) error {
	lock := s.cartLock(cartID)
	lock.Lock()
	defer lock.Unlock()
	return s.cartRepo.Delete(ctx, cartID)
}

func clampQuantity(quantity, stockQuantity int) int {
	if stockQuantity > 0 && quantity > stockQuantity {
		return stockQuantity
	}
	if quantity < 1 {
		return 1
	}
	return quantity
}
