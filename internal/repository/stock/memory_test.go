package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshstock/internal/domain"
)

func seedItems() []domain.StockItem {
	return []domain.StockItem{
		{Product: domain.Product{ID: "tomato", Name: "Tomato", Price: 40, Unit: "kg"}, Count: 5},
		{Product: domain.Product{ID: "onion", Name: "Onion", Price: 30, Unit: "kg"}, Count: 10},
	}
}

func TestMemory_GetAndList(t *testing.T) {
	m := NewMemory(seedItems())

	item, ok := m.Get("tomato")
	require.True(t, ok)
	assert.Equal(t, 5, item.Count)

	_, ok = m.Get("ghost")
	assert.False(t, ok)

	list := m.List()
	require.Len(t, list, 2)
	assert.Equal(t, "tomato", list[0].ID, "List keeps seed order")
	assert.Equal(t, "onion", list[1].ID)
}

func TestMemory_ListReturnsCopies(t *testing.T) {
	m := NewMemory(seedItems())

	list := m.List()
	list[0].Count = 999

	item, _ := m.Get("tomato")
	assert.Equal(t, 5, item.Count)
}

func TestMemory_Decrement(t *testing.T) {
	tests := []struct {
		name        string
		amount      int
		wantRemoved int
		wantCount   int
	}{
		{"within stock", 3, 3, 2},
		{"exactly stock", 5, 5, 0},
		{"over stock clamps at zero", 8, 5, 0},
		{"zero amount", 0, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemory(seedItems())

			removed, err := m.Decrement("tomato", tt.amount)

			require.NoError(t, err)
			assert.Equal(t, tt.wantRemoved, removed)
			item, _ := m.Get("tomato")
			assert.Equal(t, tt.wantCount, item.Count)
		})
	}
}

func TestMemory_Decrement_UnknownProduct(t *testing.T) {
	m := NewMemory(seedItems())

	_, err := m.Decrement("ghost", 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemory_Decrement_NegativeAmount(t *testing.T) {
	m := NewMemory(seedItems())

	_, err := m.Decrement("tomato", -1)

	assert.Error(t, err)
}

func TestMemory_SetCount(t *testing.T) {
	m := NewMemory(seedItems())

	require.NoError(t, m.SetCount("tomato", 42))
	item, _ := m.Get("tomato")
	assert.Equal(t, 42, item.Count)

	require.NoError(t, m.SetCount("tomato", -7))
	item, _ = m.Get("tomato")
	assert.Equal(t, 0, item.Count, "negative counts floor at zero")

	assert.ErrorIs(t, m.SetCount("ghost", 1), domain.ErrNotFound)
}

func TestMemory_Add(t *testing.T) {
	m := NewMemory(seedItems())

	require.NoError(t, m.Add("tomato", 10))
	item, _ := m.Get("tomato")
	assert.Equal(t, 15, item.Count)

	require.NoError(t, m.Add("tomato", -100))
	item, _ = m.Get("tomato")
	assert.Equal(t, 0, item.Count, "removal past zero floors at zero")

	assert.ErrorIs(t, m.Add("ghost", 1), domain.ErrNotFound)
}
