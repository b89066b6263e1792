package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuantity(t *testing.T) {
	tests := []struct {
		quantity  float64
		unit      string
		wantQty   float64
		wantLabel string
	}{
		{500, "ml", 5.0, "100ml"},
		{250, "g", 2.5, "100g"},
		{50, "gram", 0.5, "100g"},
		{50, "grams", 0.5, "100g"},
		{1, "unit", 1.0, "unit"},
		{2, "slice", 2.0, "slice"},
		{1, "bowl", 1.0, "bowl"},
	}

	for _, tt := range tests {
		gotQty, gotLabel := NormalizeQuantity(tt.quantity, tt.unit)
		assert.InDelta(t, tt.wantQty, gotQty, 1e-9, "quantity for %v %s", tt.quantity, tt.unit)
		assert.Equal(t, tt.wantLabel, gotLabel, "label for %v %s", tt.quantity, tt.unit)
	}
}
