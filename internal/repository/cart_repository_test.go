package repository

import (
	"context"
	"testing"

	"github.com/voltride/storefront/internal/constants"
	"github.com/voltride/storefront/internal/models"
)

func TestMemoryCartRepositoryRoundTrip(t *testing.T) {
	repo := NewMemoryCartRepository()
	ctx := context.Background()

	state := models.EmptyCartState()
	state.Lines = append(state.Lines, models.CartLine{
		ProductID:     1,
		SKU:           "SKU-1",
		PriceCentimes: 100_000,
		Quantity:      2,
		StockQuantity: 5,
	})
	if err := repo.Save(ctx, "cart-a", state); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := repo.Load(ctx, "cart-a")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Version != constants.CartSchemaVersion || len(loaded.Lines) != 1 {
		t.Fatalf("unexpected state: %+v", loaded)
	}
	if loaded.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected quantity: %d", loaded.Lines[0].Quantity)
	}
}

func TestMemoryCartRepositoryMissingCart(t *testing.T) {
	repo := NewMemoryCartRepository()

	loaded, err := repo.Load(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(loaded.Lines) != 0 || loaded.Version != constants.CartSchemaVersion {
		t.Fatalf("expected empty cart, got %+v", loaded)
	}
}

func TestMemoryCartRepositoryCorruptPayload(t *testing.T) {
	repo := NewMemoryCartRepository()
	repo.SeedRaw("cart-a", []byte("{broken"))

	loaded, err := repo.Load(context.Background(), "cart-a")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(loaded.Lines) != 0 {
		t.Fatalf("corrupt payload should fail open to empty cart, got %+v", loaded)
	}
}

func TestMemoryCartRepositoryDelete(t *testing.T) {
	repo := NewMemoryCartRepository()
	ctx := context.Background()

	state := models.EmptyCartState()
	state.Lines = append(state.Lines, models.CartLine{ProductID: 1, Quantity: 1, StockQuantity: 5})
	if err := repo.Save(ctx, "cart-a", state); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := repo.Delete(ctx, "cart-a"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	loaded, err := repo.Load(ctx, "cart-a")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(loaded.Lines) != 0 {
		t.Fatalf("expected empty cart after delete, got %+v", loaded)
	}
}
