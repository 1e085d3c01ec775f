package models

import (
	"encoding/json"
	"testing"

	"github.com/voltride/storefront/internal/constants"
)

func TestEncodeDecodeCartStateRoundTrip(t *testing.T) {
	variantID := uint(7)
	state := CartState{
		Lines: []CartLine{
			{
				ProductID:     1,
				VariantID:     &variantID,
				SKU:           "SKU-BLK",
				Name:          "VoltRide V8 Pro",
				PriceCentimes: 8_990_000,
				Quantity:      2,
				StockQuantity: 5,
				VariantLabel:  "Noir / 350W",
			},
		},
	}

	raw, err := EncodeCartState(state)
	if err != nil {
		t.Fatalf("EncodeCartState error: %v", err)
	}

	decoded := DecodeCartState(raw)
	if decoded.Version != constants.CartSchemaVersion {
		t.Fatalf("expected version %d, got %d", constants.CartSchemaVersion, decoded.Version)
	}
	if len(decoded.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(decoded.Lines))
	}
	line := decoded.Lines[0]
	if line.VariantID == nil || *line.VariantID != 7 || line.Quantity != 2 {
		t.Fatalf("unexpected line: %+v", line)
	}
	if line.TotalCentimes() != 17_980_000 {
		t.Fatalf("unexpected line total: %d", line.TotalCentimes())
	}
}

func TestDecodeCartStateEmptyPayload(t *testing.T) {
	decoded := DecodeCartState(nil)
	if decoded.Version != constants.CartSchemaVersion || len(decoded.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", decoded)
	}
	if decoded.Lines == nil {
		t.Fatalf("expected non-nil lines slice")
	}
}

func TestDecodeCartStateCorruptPayloadFailsOpen(t *testing.T) {
	for _, raw := range [][]byte{
		[]byte("not-json"),
		[]byte(`{"version":"x"}`),
		[]byte(`123`),
	} {
		decoded := DecodeCartState(raw)
		if decoded.Version != constants.CartSchemaVersion || len(decoded.Lines) != 0 {
			t.Fatalf("expected empty cart for %q, got %+v", raw, decoded)
		}
	}
}

func TestDecodeCartStateLegacyBareArray(t *testing.T) {
	// 引入版本号之前的落盘格式：裸行数组，行上没有 variant_id
	raw := []byte(`[{"product_id":3,"sku":"SKU-3","name":"Old","price_centimes":50000,"quantity":2,"stock_quantity":10}]`)

	decoded := DecodeCartState(raw)
	if decoded.Version != constants.CartSchemaVersion {
		t.Fatalf("expected migrated version, got %d", decoded.Version)
	}
	if len(decoded.Lines) != 1 {
		t.Fatalf("expected 1 migrated line, got %d", len(decoded.Lines))
	}
	line := decoded.Lines[0]
	if line.VariantID != nil {
		t.Fatalf("legacy line should stay variant-less, got %+v", line.VariantID)
	}
	if line.Quantity != 2 || line.PriceCentimes != 50_000 {
		t.Fatalf("unexpected migrated line: %+v", line)
	}
}

func TestDecodeCartStateV1MigrationDropsAndClamps(t *testing.T) {
	v1 := CartState{
		Version: 1,
		Lines: []CartLine{
			{ProductID: 0, Quantity: 1, StockQuantity: 5},  // 无商品ID，丢弃
			{ProductID: 2, Quantity: 1, StockQuantity: 0},  // 无库存快照，丢弃
			{ProductID: 3, Quantity: 9, StockQuantity: 4},  // 数量夹取
			{ProductID: 4, Quantity: 0, StockQuantity: 4},  // 数量归一到 1
		},
	}
	raw, err := json.Marshal(v1)
	if err != nil {
		t.Fatalf("marshal v1 state: %v", err)
	}

	decoded := DecodeCartState(raw)
	if len(decoded.Lines) != 2 {
		t.Fatalf("expected 2 surviving lines, got %+v", decoded.Lines)
	}
	if decoded.Lines[0].ProductID != 3 || decoded.Lines[0].Quantity != 4 {
		t.Fatalf("expected quantity clamped to stock, got %+v", decoded.Lines[0])
	}
	if decoded.Lines[1].ProductID != 4 || decoded.Lines[1].Quantity != 1 {
		t.Fatalf("expected quantity floored to 1, got %+v", decoded.Lines[1])
	}
}

func TestCartStateFindLine(t *testing.T) {
	variantID := uint(7)
	state := CartState{
		Lines: []CartLine{
			{ProductID: 1},
			{ProductID: 1, VariantID: &variantID},
		},
	}

	if idx := state.FindLine(1, nil); idx != 0 {
		t.Fatalf("expected index 0, got %d", idx)
	}
	if idx := state.FindLine(1, &variantID); idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	other := uint(8)
	if idx := state.FindLine(1, &other); idx != -1 {
		t.Fatalf("expected -1 for unknown variant, got %d", idx)
	}
}
