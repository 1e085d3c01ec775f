package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/voltride/storefront/internal/cache"
	"github.com/voltride/storefront/internal/constants"
	"github.com/voltride/storefront/internal/logger"
	"github.com/voltride/storefront/internal/models"
	"github.com/voltride/storefront/internal/queue"
	"github.com/voltride/storefront/internal/repository"

	"gorm.io/gorm"
)

// OrderService 订单服务（结账提交）
type OrderService struct {
	orderRepo          repository.OrderRepository
	productRepo        repository.ProductRepository
	zoneRepo           repository.DeliveryZoneRepository
	cartService        *CartService
	queueClient        *queue.Client
	defaultDeliveryFee models.Money
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, zoneRepo repository.DeliveryZoneRepository, cartService *CartService, queueClient *queue.Client, defaultDeliveryFee models.Money) *OrderService {
	return &OrderService{
		orderRepo:          orderRepo,
		productRepo:        productRepo,
		zoneRepo:           zoneRepo,
		cartService:        cartService,
		queueClient:        queueClient,
		defaultDeliveryFee: defaultDeliveryFee,
	}
}

// PlaceOrderInput 下单输入
// 行项只携带 {product_id, variant_id, quantity}，单价由服务端重新取值，
// 购物车里的价格快照仅用于展示。
type PlaceOrderInput struct {
	CartID         string
	Phone          string
	City           string
	Note           string
	DeliveryZoneID *uint
	ClientIP       string
}

// PlaceOrder 结账提交
// 成功后清空购物车并失效订单列表缓存；失败时购物车保持原样，由
// 调用方把错误透出给买家重试，不做自动重试。
func (s *OrderService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*models.Order, error) {
	phone := strings.TrimSpace(input.Phone)
	city := strings.TrimSpace(input.City)
	if input.CartID == "" || phone == "" || city == "" {
		return nil, ErrInvalidCheckoutInput
	}

	state, err := s.cartService.Get(ctx, input.CartID)
	if err != nil {
		return nil, err
	}
	if len(state.Lines) == 0 {
		return nil, ErrCartEmpty
	}

	deliveryFee := s.defaultDeliveryFee
	if input.DeliveryZoneID != nil {
		zone, err := s.zoneRepo.GetByID(*input.DeliveryZoneID)
		if err != nil {
			return nil, err
		}
		if zone == nil || !zone.IsActive {
			return nil, ErrDeliveryZoneInvalid
		}
		deliveryFee = zone.FeeCentimes
	}

	items, subtotal, err := s.buildOrderItems(state.Lines)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderNo:             generateOrderNo(),
		Phone:               phone,
		City:                city,
		Note:                strings.TrimSpace(input.Note),
		Status:              constants.OrderStatusPending,
		Currency:            constants.CurrencyDZD,
		DeliveryZoneID:      input.DeliveryZoneID,
		SubtotalCentimes:    subtotal,
		DeliveryFeeCentimes: deliveryFee,
		TotalCentimes:       subtotal + deliveryFee,
		ClientIP:            input.ClientIP,
	}

	if err := s.productRepo.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.WithTx(tx).Create(order, items)
	}); err != nil {
		return nil, err
	}

	// 下单已落库，后续清理失败只记日志，不影响订单结果
	if err := s.cartService.Clear(ctx, input.CartID); err != nil {
		logger.Warnw("order_clear_cart_failed", "order_no", order.OrderNo, "cart_id", input.CartID, "error", err)
	}
	if err := cache.Del(ctx, orderListCacheKey(phone)); err != nil {
		logger.Warnw("order_list_cache_del_failed", "order_no", order.OrderNo, "error", err)
	}
	if err := s.queueClient.EnqueueOrderConfirmation(queue.OrderConfirmationPayload{OrderID: order.ID}); err != nil {
		logger.Warnw("order_confirmation_enqueue_failed", "order_no", order.OrderNo, "error", err)
	}

	return order, nil
}

// buildOrderItems 以目录现价重建订单项（服务端是最终计价的唯一来源）
func (s *OrderService) buildOrderItems(lines []models.CartLine) ([]models.OrderItem, models.Money, error) {
	items := make([]models.OrderItem, 0, len(lines))
	var subtotal models.Money
	for _, line := range lines {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, 0, err
		}
		if product == nil || !product.IsActive {
			return nil, 0, ErrProductNotAvailable
		}

		var variant *models.ProductVariant
		if line.VariantID != nil {
			variant, err = s.productRepo.GetVariantByID(line.ProductID, *line.VariantID)
			if err != nil {
				return nil, 0, err
			}
			if variant == nil || !variant.IsActive {
				return nil, 0, ErrVariantNotAvailable
			}
		}

		unitPrice := variant.EffectivePrice(product)
		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		total := unitPrice.Mul(quantity)
		subtotal += total
		items = append(items, models.OrderItem{
			ProductID:         line.ProductID,
			VariantID:         line.VariantID,
			SKU:               variant.EffectiveSKU(product),
			Name:              product.Name,
			VariantLabel:      variant.Label(),
			UnitPriceCentimes: unitPrice,
			Quantity:          quantity,
			TotalCentimes:     total,
		})
	}
	return items, subtotal, nil
}

// GetByOrderNoAndPhone 按订单编号+电话查询订单
func (s *OrderService) GetByOrderNoAndPhone(orderNo, phone string) (*models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	phone = strings.TrimSpace(phone)
	if orderNo == "" || phone == "" {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByOrderNoAndPhone(orderNo, phone)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// OrderListResult 订单列表结果
type OrderListResult struct {
	Orders []models.Order `json:"orders"`
	Total  int64          `json:"total"`
}

// ListByPhone 按电话列出订单
// 默认首页走 Redis 缓存，下单成功后整键失效。
func (s *OrderService) ListByPhone(ctx context.Context, filter repository.OrderListFilter) (*OrderListResult, error) {
	filter.Phone = strings.TrimSpace(filter.Phone)
	if filter.Phone == "" {
		return nil, ErrOrderNotFound
	}
	filter.Page, filter.PageSize = repository.NormalizePage(filter.Page, filter.PageSize)

	cacheable := filter.Page == 1 && filter.Status == ""
	cacheKey := orderListCacheKey(filter.Phone)
	if cacheable {
		var cached OrderListResult
		if hit, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return &cached, nil
		} else if err != nil {
			logger.Warnw("order_list_cache_read_failed", "phone", filter.Phone, "error", err)
		}
	}

	orders, total, err := s.orderRepo.ListByPhone(filter)
	if err != nil {
		return nil, err
	}
	result := &OrderListResult{Orders: orders, Total: total}
	if cacheable {
		if err := cache.SetJSON(ctx, cacheKey, result, 2*time.Minute); err != nil {
			logger.Warnw("order_list_cache_write_failed", "phone", filter.Phone, "error", err)
		}
	}
	return result, nil
}

// MarkConfirmed 标记订单已确认（由异步任务回写）
func (s *OrderService) MarkConfirmed(orderID uint, now time.Time) error {
	return s.orderRepo.UpdateStatus(orderID, constants.OrderStatusConfirmed, map[string]interface{}{
		"confirmed_at": now,
		"updated_at":   now,
	})
}

// GetByID 按ID获取订单
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("VR%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		fmt.Fprintf(&b, "%d", n.Int64())
	}
	return b.String()
}

func orderListCacheKey(phone string) string {
	return fmt.Sprintf("orders:phone:%s", phone)
}
