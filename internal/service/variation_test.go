package service

import (
	"testing"

	"github.com/voltride/storefront/internal/models"
)

func buildVariant(id uint, stock int, attrs ...models.AttributeValue) models.ProductVariant {
	return models.ProductVariant{
		ID:              id,
		ProductID:       1,
		StockQuantity:   stock,
		IsActive:        true,
		AttributeValues: models.AttributeValues(attrs),
	}
}

func av(attributeID uint, attribute string, id uint, value string) models.AttributeValue {
	return models.AttributeValue{AttributeID: attributeID, Attribute: attribute, ID: id, Value: value}
}

func TestVariationDimensionsOrderAndDedup(t *testing.T) {
	variants := []models.ProductVariant{
		buildVariant(1, 5, av(1, "Couleur", 11, "Noir"), av(2, "Moteur", 21, "350W")),
		buildVariant(2, 5, av(1, "Couleur", 11, "Noir"), av(2, "Moteur", 22, "500W")),
		buildVariant(3, 5, av(1, "Couleur", 12, "Gris"), av(2, "Moteur", 21, "350W")),
	}

	dims := VariationDimensions(variants)
	if len(dims) != 2 {
		t.Fatalf("expected 2 dimensions, got %d", len(dims))
	}
	if dims[0].Name != "Couleur" || dims[1].Name != "Moteur" {
		t.Fatalf("unexpected dimension order: %+v", dims)
	}
	if len(dims[0].Values) != 2 || dims[0].Values[0] != "Noir" || dims[0].Values[1] != "Gris" {
		t.Fatalf("unexpected color values: %+v", dims[0].Values)
	}
	if len(dims[1].Values) != 2 || dims[1].Values[0] != "350W" || dims[1].Values[1] != "500W" {
		t.Fatalf("unexpected motor values: %+v", dims[1].Values)
	}
}

func TestVariationDimensionsEmpty(t *testing.T) {
	if dims := VariationDimensions(nil); len(dims) != 0 {
		t.Fatalf("expected no dimensions for nil variants, got %+v", dims)
	}
}

func TestResolveVariantCompleteSelection(t *testing.T) {
	variants := []models.ProductVariant{
		buildVariant(1, 5, av(1, "Couleur", 11, "Noir"), av(2, "Moteur", 21, "350W")),
		buildVariant(2, 5, av(1, "Couleur", 11, "Noir"), av(2, "Moteur", 22, "500W")),
	}
	dims := VariationDimensions(variants)

	got := ResolveVariant(variants, dims, map[string]string{"Couleur": "Noir", "Moteur": "500W"})
	if got == nil || got.ID != 2 {
		t.Fatalf("expected variant 2, got %+v", got)
	}
}

func TestResolveVariantIncompleteSelection(t *testing.T) {
	variants := []models.ProductVariant{
		buildVariant(1, 5, av(1, "Couleur", 11, "Noir"), av(2, "Moteur", 21, "350W")),
	}
	dims := VariationDimensions(variants)

	if got := ResolveVariant(variants, dims, map[string]string{"Couleur": "Noir"}); got != nil {
		t.Fatalf("expected nil for incomplete selection, got %+v", got)
	}
	if got := ResolveVariant(variants, dims, nil); got != nil {
		t.Fatalf("expected nil for empty selection, got %+v", got)
	}
}

func TestResolveVariantNoMatch(t *testing.T) {
	variants := []models.ProductVariant{
		buildVariant(1, 5, av(1, "Couleur", 11, "Noir"), av(2, "Moteur", 21, "350W")),
	}
	dims := VariationDimensions(variants)

	got := ResolveVariant(variants, dims, map[string]string{"Couleur": "Blanc", "Moteur": "350W"})
	if got != nil {
		t.Fatalf("expected nil for unmatched combination, got %+v", got)
	}
}
