package service

import (
	"context"
	"testing"

	"github.com/voltride/storefront/internal/models"
	"github.com/voltride/storefront/internal/repository"
)

func buildCartProduct(id uint, price models.Money, stock int) *models.Product {
	return &models.Product{
		ID:            id,
		Slug:          "test-product",
		SKU:           "SKU-BASE",
		Name:          "Test Product",
		PriceCentimes: price,
		StockQuantity: stock,
		Images:        models.StringArray{"/uploads/a.jpg"},
		IsActive:      true,
	}
}

func TestCartAddItemCreatesLine(t *testing.T) {
	svc := NewCartService(repository.NewMemoryCartRepository())
	ctx := context.Background()
	product := buildCartProduct(1, 100_000, 10)

	state, err := svc.AddItem(ctx, "cart-a", product, nil)
	if err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	if len(state.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(state.Lines))
	}
	line := state.Lines[0]
	if line.ProductID != 1 || line.VariantID != nil || line.Quantity != 1 {
		t.Fatalf("unexpected line: %+v", line)
	}
	if line.SKU != "SKU-BASE" || line.PriceCentimes != 100_000 || line.StockQuantity != 10 {
		t.Fatalf("unexpected snapshot: %+v", line)
	}
	if line.ThumbnailURL != "/uploads/a.jpg" {
		t.Fatalf("unexpected thumbnail: %s", line.ThumbnailURL)
	}
}

func TestCartAddItemIncrementsExistingLine(t *testing.T) {
	svc := NewCartService(repository.NewMemoryCartRepository())
	ctx := context.Background()
	product := buildCartProduct(1, 100_000, 10)

	if _, err := svc.AddItem(ctx, "cart-a", product, nil); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	state, err := svc.AddItem(ctx, "cart-a", product, nil)
	if err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	if len(state.Lines) != 1 {
		t.Fatalf("expected single line, got %d", len(state.Lines))
	}
	if state.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", state.Lines[0].Quantity)
	}
}

func TestCartAddItemVariantSnapshotAndUniqueness(t *testing.T) {
	svc := NewCartService(repository.NewMemoryCartRepository())
	ctx := context.Background()
	product := buildCartProduct(1, 100_000, 0)
	price := models.Money(120_000)
	black := buildVariant(7, 5, av(1, "Couleur", 11, "Noir"))
	black.SKU = "SKU-BLK"
	black.PriceCentimes = &price
	grey := buildVariant(8, 3, av(1, "Couleur", 12, "Gris"))

	state, err := svc.AddItem(ctx, "cart-a", product, &black)
	if err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	line := state.Lines[0]
	if line.VariantID == nil || *line.VariantID != 7 {
		t.Fatalf("unexpected variant id: %+v", line)
	}
	if line.SKU != "SKU-BLK" || line.PriceCentimes != 120_000 || line.StockQuantity != 5 {
		t.Fatalf("variant snapshot not applied: %+v", line)
	}
	if line.VariantLabel != "Noir" {
		t.Fatalf("unexpected variant label: %s", line.VariantLabel)
	}

	// 同商品不同规格是独立行
	state, err = svc.AddItem(ctx, "cart-a", product, &grey)
	if err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	if len(state.Lines) != 2 {
		t.Fatalf("expected 2 lines for distinct variants, got %d", len(state.Lines))
	}
	// 未覆盖价格的规格继承商品基准价
	if state.Lines[1].PriceCentimes != 100_000 {
		t.Fatalf("expected inherited price, got %d", state.Lines[1].PriceCentimes)
	}
}

func TestCartAddItemClampsAtStock(t *testing.T) {
	svc := NewCartService(repository.NewMemoryCartRepository())
	ctx := context.Background()
	product := buildCartProduct(1, 100_000, 2)

	for i := 0; i < 4; i++ {
		if _, err := svc.AddItem(ctx, "cart-a", product, nil); err != nil {
			t.Fatalf("AddItem error: %v", err)
		}
	}
	state, err := svc.Get(ctx, "cart-a")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if state.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity clamped to 2, got %d", state.Lines[0].Quantity)
	}
}

func TestCartAddItemOutOfStockIsNoop(t *testing.T) {
	svc := NewCartService(repository.NewMemoryCartRepository())
	ctx := context.Background()
	product := buildCartProduct(1, 100_000, 0)

	state, err := svc.AddItem(ctx, "cart-a", product, nil)
	if err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	if len(state.Lines) != 0 {
		t.Fatalf("expected no lines for out-of-stock product, got %d", len(state.Lines))
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	svc := NewCartService(repository.NewMemoryCartRepository())
	ctx := context.Background()
	product := buildCartProduct(1, 100_000, 5)

	if _, err := svc.AddItem(ctx, "cart-a", product, nil); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}

	state, err := svc.UpdateQuantity(ctx, "cart-a", 1, 3, nil)
	if err != nil {
		t.Fatalf("UpdateQuantity error: %v", err)
	}
	if state.Lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", state.Lines[0].Quantity)
	}

	// 超过库存快照时夹取
	state, err = svc.UpdateQuantity(ctx, "cart-a", 1, 99, nil)
	if err != nil {
		t.Fatalf("UpdateQuantity error: %v", err)
	}
	if state.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity clamped to 5, got %d", state.Lines[0].Quantity)
	}

	// 数量归零等同删除
	state, err = svc.UpdateQuantity(ctx, "cart-a", 1, 0, nil)
	if err != nil {
		t.Fatalf("UpdateQuantity error: %v", err)
	}
	if len(state.Lines) != 0 {
		t.Fatalf("expected line removed, got %+v", state.Lines)
	}
}

func TestCartUpdateQuantityMissingLineIsNoop(t *testing.T) {
	svc := NewCartService(repository.NewMemoryCartRepository())
	ctx := context.Background()

	state, err := svc.UpdateQuantity(ctx, "cart-a", 42, 3, nil)
	if err != nil {
		t.Fatalf("UpdateQuantity error: %v", err)
	}
	if len(state.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", state.Lines)
	}
}

func TestCartRemoveItemAndClear(t *testing.T) {
	svc := NewCartService(repository.NewMemoryCartRepository())
	ctx := context.Background()
	first := buildCartProduct(1, 100_000, 5)
	second := buildCartProduct(2, 50_000, 5)
	second.SKU = "SKU-2"

	if _, err := svc.AddItem(ctx, "cart-a", first, nil); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	if _, err := svc.AddItem(ctx, "cart-a", second, nil); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}

	state, err := svc.RemoveItem(ctx, "cart-a", 1, nil)
	if err != nil {
		t.Fatalf("RemoveItem error: %v", err)
	}
	if len(state.Lines) != 1 || state.Lines[0].ProductID != 2 {
		t.Fatalf("unexpected lines after removal: %+v", state.Lines)
	}

	if err := svc.Clear(ctx, "cart-a"); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	state, err = svc.Get(ctx, "cart-a")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if len(state.Lines) != 0 || state.SubtotalCentimes() != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", state)
	}
}

func TestCartSubtotalAndTotalItems(t *testing.T) {
	svc := NewCartService(repository.NewMemoryCartRepository())
	ctx := context.Background()
	first := buildCartProduct(1, 100_000, 5)
	second := buildCartProduct(2, 50_000, 5)

	if _, err := svc.AddItem(ctx, "cart-a", first, nil); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	if _, err := svc.AddItem(ctx, "cart-a", first, nil); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	if _, err := svc.AddItem(ctx, "cart-a", second, nil); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}

	state, err := svc.Get(ctx, "cart-a")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if state.TotalItems() != 3 {
		t.Fatalf("expected 3 total items, got %d", state.TotalItems())
	}
	if state.SubtotalCentimes() != 250_000 {
		t.Fatalf("expected subtotal 250000, got %d", state.SubtotalCentimes())
	}
}

func TestCartIsolationBetweenCartIDs(t *testing.T) {
	svc := NewCartService(repository.NewMemoryCartRepository())
	ctx := context.Background()
	product := buildCartProduct(1, 100_000, 5)

	if _, err := svc.AddItem(ctx, "cart-a", product, nil); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	state, err := svc.Get(ctx, "cart-b")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if len(state.Lines) != 0 {
		t.Fatalf("expected cart-b untouched, got %+v", state.Lines)
	}
}
