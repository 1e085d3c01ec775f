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

// GetProducts 获取商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = repository.NormalizePage(page, pageSize)

	filter := repository.ProductListFilter{
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     page,
		PageSize: pageSize,
	}
	if rawCategoryID := c.Query("category_id"); rawCategoryID != "" {
		categoryID, err := strconv.ParseUint(rawCategoryID, 10, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		filter.CategoryID = uint(categoryID)
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, products, pagination)
}

// GetProductBySlug 根据 slug 获取商品详情（含规格维度）
func (h *Handler) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	detail, err := h.ProductService.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrProductNotAvailable) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	response.Success(c, detail)
}

// GetCategories 获取分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.ProductService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"items": categories})
}

// GetDeliveryZones 获取启用的配送区域列表
func (h *Handler) GetDeliveryZones(c *gin.Context) {
	zones, err := h.DeliveryZoneRepo.ListActive()
	if err != nil {
		respondError(c, response.CodeInternal, "error.delivery_zone_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"items": zones})
}
