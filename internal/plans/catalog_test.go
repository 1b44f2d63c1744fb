package plans

import (
	"testing"

	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCatalog_Lookup(t *testing.T) {
	catalog := Default()

	tests := []struct {
		name   string
		planID string
		want   domain.Plan
	}{
		{"Basic", "basic", domain.Plan{ID: "basic", Price: 20, Words: 100}},
		{"Premium mixed case", " Premium ", domain.Plan{ID: "premium", Price: 50, Words: 1000}},
		{"Unknown falls back to basic", "gold", domain.Plan{ID: "basic", Price: 20, Words: 100}},
		{"Empty falls back to basic", "", domain.Plan{ID: "basic", Price: 20, Words: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Lookup(tt.planID)
			assert.Equal(t, tt.want.ID, got.ID)
			assert.Equal(t, tt.want.Price, got.Price)
			assert.Equal(t, tt.want.Words, got.Words)
		})
	}
}

func TestCatalog_List(t *testing.T) {
	list := Default().List()
	assert.Len(t, list, 2)
	assert.Equal(t, "basic", list[0].ID)
	assert.Equal(t, "premium", list[1].ID)
}

func TestNew_MissingFallbackPanics(t *testing.T) {
	assert.Panics(t, func() {
		New([]domain.Plan{{ID: "basic", Price: 1, Words: 1}}, "gold")
	})
}
