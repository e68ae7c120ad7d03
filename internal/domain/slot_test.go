package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelops/TLO-LeadService/pkg/types"
)

func TestSlotCatalog(t *testing.T) {
	catalog := SlotCatalog()
	require.Len(t, catalog, SlotCatalogSize)

	assert.Equal(t, types.TimeString("09:00"), catalog[0].Key)
	assert.Equal(t, "9:00 AM", catalog[0].Label)
	assert.Equal(t, types.TimeString("17:30"), catalog[len(catalog)-1].Key)
	assert.Equal(t, "5:30 PM", catalog[len(catalog)-1].Label)

	// Ключи строго возрастают с шагом 30 минут
	for i := 1; i < len(catalog); i++ {
		prev, cur := catalog[i-1].Key, catalog[i].Key
		assert.True(t, prev.IsBefore(cur), "catalog must be strictly increasing at %d", i)

		next, err := prev.AddMinutes(SlotStepMinutes)
		require.NoError(t, err)
		assert.Equal(t, next, cur)
	}
}

func TestSlotCatalog_NoonLabel(t *testing.T) {
	var noon, halfNoon string
	for _, s := range SlotCatalog() {
		switch s.Key {
		case "12:00":
			noon = s.Label
		case "12:30":
			halfNoon = s.Label
		}
	}
	assert.Equal(t, "12:00 PM", noon)
	assert.Equal(t, "12:30 PM", halfNoon)
}

func TestSlotCatalog_ReturnsCopy(t *testing.T) {
	first := SlotCatalog()
	first[0].Label = "mutated"

	assert.Equal(t, "9:00 AM", SlotCatalog()[0].Label)
}

func TestSlotInCatalog(t *testing.T) {
	assert.True(t, SlotInCatalog("09:00"))
	assert.True(t, SlotInCatalog("17:30"))
	assert.False(t, SlotInCatalog("08:30"))
	assert.False(t, SlotInCatalog("18:00"))
	assert.False(t, SlotInCatalog("09:15"))
}

func TestSlotLabel(t *testing.T) {
	assert.Equal(t, "10:30 AM", SlotLabel("10:30"))
	assert.Equal(t, "3:00 PM", SlotLabel("15:00"))

	// Неизвестный ключ возвращается как есть
	assert.Equal(t, "07:45", SlotLabel("07:45"))
}
