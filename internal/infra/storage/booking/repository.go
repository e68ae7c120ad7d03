package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/travelops/TLO-LeadService/internal/domain"
	"github.com/travelops/TLO-LeadService/pkg/dbmetrics"
	"github.com/travelops/TLO-LeadService/pkg/psqlbuilder"
	"github.com/travelops/TLO-LeadService/pkg/types"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const uniqueViolation = "23505"

// Repository репозиторий бронирований и резервирований слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись бронирования со статусом pending.
// Если в контексте передана активная транзакция (через context.Value),
// использует её — create_booking пишет бронирование и резервирование слота
// в одной сериализуемой транзакции.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"name",
			"email",
			"phone",
			"company",
			"slot_date",
			"slot_time",
			"message",
			"status",
			"session_id",
			"source",
		).
		Values(
			b.Name,
			b.Email,
			b.Phone,
			b.Company,
			b.SlotDate,
			b.SlotTime,
			b.Message,
			b.Status,
			b.SessionID,
			b.Source,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// CreateReservation создает строку резервирования слота для бронирования.
// Частичный уникальный индекс на (slot_date, slot_time) по активным статусам
// превращает гонку двух одновременных заявок в ErrSlotTaken для проигравшей.
func (r *Repository) CreateReservation(ctx context.Context, bookingID int64, slotDate time.Time, slotTime types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slot_reservations").
		Columns("booking_id", "slot_date", "slot_time", "status").
		Values(bookingID, slotDate, slotTime, domain.StatusPending).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateReservation - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: CreateReservation - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"phone",
		"company",
		"slot_date",
		"slot_time",
		"message",
		"status",
		"session_id",
		"source",
		"cancellation_reason",
		"cancelled_at",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.Name,
		&b.Email,
		&b.Phone,
		&b.Company,
		&b.SlotDate,
		&b.SlotTime,
		&b.Message,
		&b.Status,
		&b.SessionID,
		&b.Source,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// ListBookedSlotKeys возвращает ключи слотов, удержанных активными
// резервированиями (pending/confirmed) на указанную дату, по возрастанию времени
func (r *Repository) ListBookedSlotKeys(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("slot_time").
		From("slot_reservations").
		Where(squirrel.Eq{"slot_date": date}).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		OrderBy("slot_time ASC")

	// В транзакции create_booking блокируем строки на эту дату
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlotKeys - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlotKeys - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	keys := make([]types.TimeString, 0)
	for rows.Next() {
		var key types.TimeString
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: ListBookedSlotKeys - scan slot_time: %v", ErrScanRow, err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlotKeys - rows error: %v", ErrScanRow, err)
	}

	return keys, nil
}

// ListBookedSlotsRange возвращает карту DateKey -> занятые слоты за период
// [from, to]. Используется для одноразовой предзагрузки месяца при открытии
// модального окна бронирования.
func (r *Repository) ListBookedSlotsRange(ctx context.Context, from, to time.Time) (map[string][]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_date", "slot_time").
		From("slot_reservations").
		Where(squirrel.GtOrEq{"slot_date": from}).
		Where(squirrel.LtOrEq{"slot_date": to}).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		OrderBy("slot_date ASC, slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlotsRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlotsRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	byDate := make(map[string][]types.TimeString)
	for rows.Next() {
		var slotDate time.Time
		var slotTime types.TimeString
		if err := rows.Scan(&slotDate, &slotTime); err != nil {
			return nil, fmt.Errorf("%w: ListBookedSlotsRange - scan row: %v", ErrScanRow, err)
		}
		key := domain.FormatDateKey(slotDate)
		byDate[key] = append(byDate[key], slotTime)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlotsRange - rows error: %v", ErrScanRow, err)
	}

	return byDate, nil
}

// UpdateStatus обновляет статус бронирования и синхронизирует строку
// резервирования: cancelled/completed освобождает слот (уникальный индекс
// частичный, неактивные статусы из него выпадают).
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if status == domain.StatusCancelled {
		updateBuilder = updateBuilder.
			Set("cancellation_reason", reason).
			Set("cancelled_at", squirrel.Expr("NOW()"))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return r.syncReservationStatus(ctx, id, status)
}

// syncReservationStatus переносит статус бронирования на строку резервирования
func (r *Repository) syncReservationStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slot_reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: syncReservationStatus - build update query: %v", ErrBuildQuery, err)
	}

	// Заявки без резервирования (слот не был указан при импорте) допустимы,
	// rows affected не проверяем
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: syncReservationStatus - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

func activeStatusStrings() []string {
	out := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		out[i] = string(s)
	}
	return out
}
