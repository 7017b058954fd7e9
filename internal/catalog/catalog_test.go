package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasketsReferenceKnownProducts(t *testing.T) {
	known := make(map[string]bool)
	for _, item := range Stock() {
		known[item.ID] = true
	}

	for _, b := range Baskets() {
		for _, id := range b.ItemIDs {
			assert.Truef(t, known[id], "basket %s references unknown product %s", b.ID, id)
		}
	}
}

func TestStockCopiesDoNotAliasCatalog(t *testing.T) {
	first := Stock()
	first[0].Count = 0

	second := Stock()
	assert.Equal(t, 100, second[0].Count)
}

func TestStoreByID(t *testing.T) {
	store, ok := StoreByID("s3")
	require.True(t, ok)
	assert.False(t, store.IsOpen, "Indiranagar Depot is the closed store")

	_, ok = StoreByID("s9")
	assert.False(t, ok)
}

func TestValidPickupSlot(t *testing.T) {
	assert.True(t, ValidPickupSlot("9:00 AM - 10:00 AM"))
	assert.False(t, ValidPickupSlot("1:00 PM - 2:00 PM"), "lunch hour is not offered")
	assert.False(t, ValidPickupSlot(""))
}
