package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/voltride/storefront/internal/http/response"
	"github.com/voltride/storefront/internal/repository"
	"github.com/voltride/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest 结账提交请求
type CreateOrderRequest struct {
	Phone          string `json:"phone" binding:"required"`
	City           string `json:"city" binding:"required"`
	Note           string `json:"note"`
	DeliveryZoneID *uint  `json:"delivery_zone_id"`
}

// CreateOrder 结账提交
// 订单金额以服务端目录现价为准，提交成功后购物车被清空。
func (h *Handler) CreateOrder(c *gin.Context) {
	cartID := ensureCartID(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.PlaceOrder(c.Request.Context(), service.PlaceOrderInput{
		CartID:         cartID,
		Phone:          req.Phone,
		City:           req.City,
		Note:           req.Note,
		DeliveryZoneID: req.DeliveryZoneID,
		ClientIP:       c.ClientIP(),
	})
	if err != nil {
		respondOrderCreateError(c, err)
		return
	}

	requestLog(c).Infow("order_created",
		"order_no", order.OrderNo,
		"total_centimes", order.TotalCentimes,
		"items", len(order.Items),
	)
	response.Success(c, order)
}

// GetOrderByOrderNo 按订单号+电话查询订单
// 电话作为查询凭证，二者必须同时匹配。
func (h *Handler) GetOrderByOrderNo(c *gin.Context) {
	orderNo := strings.TrimSpace(c.Param("order_no"))
	phone := strings.TrimSpace(c.Query("phone"))
	if orderNo == "" || phone == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.GetByOrderNoAndPhone(orderNo, phone)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	response.Success(c, order)
}

// ListOrders 按电话列出订单
func (h *Handler) ListOrders(c *gin.Context) {
	phone := strings.TrimSpace(c.Query("phone"))
	if phone == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = repository.NormalizePage(page, pageSize)

	result, err := h.OrderService.ListByPhone(c.Request.Context(), repository.OrderListFilter{
		Phone:    phone,
		Status:   strings.TrimSpace(c.Query("status")),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     result.Total,
		TotalPage: (result.Total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, result.Orders, pagination)
}
