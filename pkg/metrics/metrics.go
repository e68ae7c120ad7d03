package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер всех prometheus метрик сервиса.
// Создается один раз в main и передается по ссылке.
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration  *prometheus.HistogramVec
	DBPoolOpen       prometheus.Gauge
	DBPoolIdle       prometheus.Gauge
	DBPoolInUse      prometheus.Gauge
	DBTxRetriesTotal prometheus.Counter

	// Бизнес-метрики
	BookingsCreatedTotal   prometheus.Counter
	LeadsCapturedTotal     *prometheus.CounterVec
	EmailDispatchTotal     *prometheus.CounterVec
	SlotConflictsTotal     prometheus.Counter
	StoreDegradationsTotal prometheus.Counter
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency by operation kind.",
			ConstLabels: labels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		DBPoolOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Open connections in the database pool.",
			ConstLabels: labels,
		}),

		DBPoolIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Idle connections in the database pool.",
			ConstLabels: labels,
		}),

		DBPoolInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "Connections currently in use.",
			ConstLabels: labels,
		}),

		DBTxRetriesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "db_tx_serialization_retries_total",
			Help:        "Serializable transaction retries.",
			ConstLabels: labels,
		}),

		BookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Booking records successfully persisted.",
			ConstLabels: labels,
		}),

		LeadsCapturedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "leads_captured_total",
			Help:        "Lead rows persisted by form type.",
			ConstLabels: labels,
		}, []string{"form_type"}),

		EmailDispatchTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "email_dispatch_total",
			Help:        "Relay email dispatch attempts by recipient kind and outcome.",
			ConstLabels: labels,
		}, []string{"recipient", "outcome"}),

		SlotConflictsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_slot_conflicts_total",
			Help:        "Booking attempts rejected because the slot was already reserved.",
			ConstLabels: labels,
		}),

		StoreDegradationsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "store_degradations_total",
			Help:        "Operations that continued after a tolerated datastore failure.",
			ConstLabels: labels,
		}),
	}
}

// Хелперы для слоев, которым не нужен доступ к prometheus типам напрямую.
// Хендлеры и интеграции зависят от маленьких интерфейсов в своих contract
// файлах, эти методы их реализуют.

// IncBookingCreated учитывает записанную заявку
func (m *Metrics) IncBookingCreated() {
	m.BookingsCreatedTotal.Inc()
}

// IncLeadCaptured учитывает записанный лид по типу формы
func (m *Metrics) IncLeadCaptured(formType string) {
	m.LeadsCapturedTotal.WithLabelValues(formType).Inc()
}

// IncSlotConflict учитывает проигранную гонку за слот
func (m *Metrics) IncSlotConflict() {
	m.SlotConflictsTotal.Inc()
}

// IncStoreDegradation учитывает запрос, пережитый без хранилища
func (m *Metrics) IncStoreDegradation() {
	m.StoreDegradationsTotal.Inc()
}

// IncTxRetry учитывает повтор сериализуемой транзакции
func (m *Metrics) IncTxRetry() {
	m.DBTxRetriesTotal.Inc()
}

// RecordEmailDispatch учитывает попытку отправки письма
func (m *Metrics) RecordEmailDispatch(recipient, outcome string) {
	m.EmailDispatchTotal.WithLabelValues(recipient, outcome).Inc()
}
