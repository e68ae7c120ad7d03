package get_available_slots

import "github.com/travelops/TLO-LeadService/pkg/types"

// Причины недоступности слота. Пустая строка означает доступный слот.
const (
	ReasonPast   = "past"
	ReasonBooked = "booked"
)

// Request модель запроса на получение слотов консультаций
type Request struct {
	DateKey string // Дата в формате YYYY-MM-DD
}

// Response модель ответа: полный каталог слотов на дату с признаком доступности
type Response struct {
	DateKey string // Дата, на которую запрашивались слоты
	Slots   []Slot // Все слоты каталога в порядке возрастания времени
}

// Slot слот каталога с вычисленной доступностью
type Slot struct {
	Key       types.TimeString // Ключ слота ("09:00")
	Label     string           // Подпись для UI ("9:00 AM")
	Available bool             // Можно ли выбрать слот
	Reason    string           // Причина недоступности: past | booked, пусто если доступен
}
