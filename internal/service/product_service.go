package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/voltride/storefront/internal/cache"
	"github.com/voltride/storefront/internal/logger"
	"github.com/voltride/storefront/internal/models"
	"github.com/voltride/storefront/internal/repository"
)

const productDetailCacheTTL = 5 * time.Minute

// ProductDetail 商品详情（含推导出的规格维度）
type ProductDetail struct {
	Product    models.Product       `json:"product"`
	Dimensions []VariationDimension `json:"dimensions"`
}

// ProductService 商品服务
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// List 前台商品列表（仅上架商品）
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.OnlyActive = true
	filter.WithCategory = true
	return s.productRepo.List(filter)
}

// GetBySlug 前台商品详情，走 Redis 缓存
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*ProductDetail, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrProductNotAvailable
	}

	cacheKey := productDetailCacheKey(slug)
	var cached ProductDetail
	if hit, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	} else if err != nil {
		logger.Warnw("product_detail_cache_read_failed", "slug", slug, "error", err)
	}

	product, err := s.productRepo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotAvailable
	}

	detail := &ProductDetail{
		Product:    *product,
		Dimensions: VariationDimensions(product.ActiveVariants()),
	}
	if err := cache.SetJSON(ctx, cacheKey, detail, productDetailCacheTTL); err != nil {
		logger.Warnw("product_detail_cache_write_failed", "slug", slug, "error", err)
	}
	return detail, nil
}

// InvalidateDetail 失效商品详情缓存（目录变更后调用）
func (s *ProductService) InvalidateDetail(ctx context.Context, slug string) {
	if err := cache.Del(ctx, productDetailCacheKey(slug)); err != nil {
		logger.Warnw("product_detail_cache_del_failed", "slug", slug, "error", err)
	}
}

// ListCategories 分类列表
func (s *ProductService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// ResolveForCart 解析加购目标规格
// 优先按显式 variant_id 匹配启用规格；否则按属性选择解析；
// 两者都未提供时，有规格商品视为选择未完成，无规格商品走默认规格（nil）。
func (s *ProductService) ResolveForCart(product *models.Product, variantID *uint, selection map[string]string) (*models.ProductVariant, error) {
	if product == nil {
		return nil, ErrProductNotAvailable
	}
	active := product.ActiveVariants()

	if variantID != nil {
		for i := range active {
			if active[i].ID == *variantID {
				return &active[i], nil
			}
		}
		return nil, ErrVariantNotAvailable
	}

	if len(active) == 0 {
		return nil, nil
	}

	dimensions := VariationDimensions(active)
	variant := ResolveVariant(active, dimensions, selection)
	if variant == nil {
		// 单一信号：选择未完成与无匹配规格不作区分
		return nil, ErrVariantNotResolved
	}
	return variant, nil
}

func productDetailCacheKey(slug string) string {
	return fmt.Sprintf("product:detail:%s", slug)
}
