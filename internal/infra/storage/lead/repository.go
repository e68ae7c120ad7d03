package lead

import (
	"context"
	"fmt"

	"github.com/travelops/TLO-LeadService/internal/domain"
	"github.com/travelops/TLO-LeadService/pkg/dbmetrics"
	"github.com/travelops/TLO-LeadService/pkg/psqlbuilder"
)

// Repository репозиторий лидов: плоские записи всех форм сайта
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория лидов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает лид. Запись best-effort: вызывающая сторона решает,
// фатальна ли ошибка для её пайплайна.
func (r *Repository) Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("leads").
		Columns(
			"form_type",
			"name",
			"email",
			"phone",
			"company",
			"message",
			"session_id",
			"source",
		).
		Values(
			l.FormType,
			l.Name,
			l.Email,
			l.Phone,
			l.Company,
			l.Message,
			l.SessionID,
			l.Source,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return l, nil
}
