package get_available_slots

import (
	"math"

	"github.com/travelops/TLO-LeadService/internal/domain"
	"github.com/travelops/TLO-LeadService/pkg/types"
)

// Синтетическая занятость: детерминированная имитация живого календаря.
// Зерно выводится из цифр DateKey, поэтому одна и та же дата всегда дает
// один и тот же набор "занятых" слотов между запросами и инстансами.

// seedFromDateKey сворачивает цифры ключа даты в зерно генератора
func seedFromDateKey(dateKey string) uint64 {
	var seed uint64
	for _, r := range dateKey {
		if r < '0' || r > '9' {
			continue
		}
		seed = seed*31 + uint64(r-'0')
	}
	return seed
}

// slotRand маленький детерминированный LCG поверх зерна даты
type slotRand struct {
	state uint64
}

func newSlotRand(seed uint64) *slotRand {
	return &slotRand{state: seed}
}

// next возвращает псевдослучайное число в [0, 1)
func (r *slotRand) next() float64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return float64(r.state>>11) / float64(1<<53)
}

// syntheticBusyCount возвращает количество синтетически занятых слотов.
// Ближние даты выглядят плотнее: полоса ≤7 дней дает 4-8 занятых слотов,
// 8-14 дней 2-5, дальше 1-3.
func syntheticBusyCount(daysAhead int, r *slotRand) int {
	var min, max int
	switch {
	case daysAhead <= domain.SyntheticNearBandDays:
		min, max = domain.SyntheticNearMin, domain.SyntheticNearMax
	case daysAhead <= domain.SyntheticMidBandDays:
		min, max = domain.SyntheticMidMin, domain.SyntheticMidMax
	default:
		min, max = domain.SyntheticFarMin, domain.SyntheticFarMax
	}
	return min + int(r.next()*float64(max-min+1))
}

// syntheticBusySlots возвращает набор синтетически занятых ключей слотов
// для даты. Выбор смещен к утренним слотам: показатель степени < 1 в
// 1 - u^bias дает больше попаданий в начало каталога.
func syntheticBusySlots(dateKey string, daysAhead int) map[types.TimeString]bool {
	catalog := domain.SlotCatalog()
	r := newSlotRand(seedFromDateKey(dateKey))
	count := syntheticBusyCount(daysAhead, r)

	busy := make(map[types.TimeString]bool, count)

	// Максимум занятых слотов (8) меньше размера каталога (18), поэтому
	// цикл с повторным броском при коллизии завершается; потолок попыток
	// страхует от вырождения генератора
	const maxAttempts = 64
	for attempts := 0; len(busy) < count && attempts < maxAttempts; attempts++ {
		u := r.next()
		idx := int((1 - math.Pow(u, domain.SyntheticMorningBias)) * float64(len(catalog)))
		if idx >= len(catalog) {
			idx = len(catalog) - 1
		}
		busy[catalog[idx].Key] = true
	}

	return busy
}
