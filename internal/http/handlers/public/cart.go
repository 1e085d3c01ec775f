package public

import (
	"strconv"

	"github.com/voltride/storefront/internal/http/response"
	"github.com/voltride/storefront/internal/models"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求
// variant_id 与 attributes 二选一：显式规格 ID 优先，否则按属性选择解析。
type AddCartItemRequest struct {
	ProductID  uint              `json:"product_id" binding:"required"`
	VariantID  *uint             `json:"variant_id"`
	Attributes map[string]string `json:"attributes"`
}

// UpdateCartItemRequest 购物车行数量更新请求
type UpdateCartItemRequest struct {
	ProductID uint  `json:"product_id" binding:"required"`
	VariantID *uint `json:"variant_id"`
	Quantity  int   `json:"quantity"`
}

// CartView 购物车响应结构
type CartView struct {
	CartID           string            `json:"cart_id"`
	Lines            []models.CartLine `json:"lines"`
	TotalItems       int               `json:"total_items"`
	SubtotalCentimes models.Money      `json:"subtotal_centimes"`
}

func newCartView(cartID string, state models.CartState) CartView {
	return CartView{
		CartID:           cartID,
		Lines:            state.Lines,
		TotalItems:       state.TotalItems(),
		SubtotalCentimes: state.SubtotalCentimes(),
	}
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	cartID := ensureCartID(c)

	state, err := h.CartService.Get(c.Request.Context(), cartID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}
	response.Success(c, newCartView(cartID, state))
}

// AddCartItem 加购一件商品
// 规格解析失败时购物车保持原样；库存不足时静默不加购。
func (h *Handler) AddCartItem(c *gin.Context) {
	cartID := ensureCartID(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductRepo.GetByID(req.ProductID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		return
	}
	if product == nil || !product.IsActive {
		respondError(c, response.CodeBadRequest, "error.product_not_available", nil)
		return
	}

	variant, err := h.ProductService.ResolveForCart(product, req.VariantID, req.Attributes)
	if err != nil {
		respondCartItemError(c, err)
		return
	}

	state, err := h.CartService.AddItem(c.Request.Context(), cartID, product, variant)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		return
	}
	response.Success(c, newCartView(cartID, state))
}

// UpdateCartItem 设置购物车行数量
// 数量为 0 或负数时等同删除该行。
func (h *Handler) UpdateCartItem(c *gin.Context) {
	cartID := ensureCartID(c)

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	state, err := h.CartService.UpdateQuantity(c.Request.Context(), cartID, req.ProductID, req.Quantity, req.VariantID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		return
	}
	response.Success(c, newCartView(cartID, state))
}

// DeleteCartItem 删除购物车行
func (h *Handler) DeleteCartItem(c *gin.Context) {
	cartID := ensureCartID(c)

	rawProductID := c.Param("product_id")
	productID, err := strconv.ParseUint(rawProductID, 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		return
	}

	var variantID *uint
	if rawVariantID := c.Query("variant_id"); rawVariantID != "" {
		parsed, perr := strconv.ParseUint(rawVariantID, 10, 64)
		if perr != nil {
			respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
			return
		}
		id := uint(parsed)
		variantID = &id
	}

	state, err := h.CartService.RemoveItem(c.Request.Context(), cartID, uint(productID), variantID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		return
	}
	response.Success(c, newCartView(cartID, state))
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	cartID := ensureCartID(c)

	if err := h.CartService.Clear(c.Request.Context(), cartID); err != nil {
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		return
	}
	response.Success(c, newCartView(cartID, models.EmptyCartState()))
}
