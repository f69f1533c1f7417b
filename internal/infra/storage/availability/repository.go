package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/booking-calendar/internal/domain"
	"github.com/m04kA/booking-calendar/pkg/dbmetrics"
	"github.com/m04kA/booking-calendar/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"start_time",
	"end_time",
	"recurring",
	"days_of_week",
	"owner_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий окон доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает окно доступности
func (r *Repository) Create(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_windows").
		Columns("start_time", "end_time", "recurring", "days_of_week", "owner_id").
		Values(
			window.Start.UTC(),
			window.End.UTC(),
			window.Recurring,
			toArray(window.DaysOfWeek),
			window.OwnerID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&window.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return window, nil
}

// GetByID получает окно доступности по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("availability_windows").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	window, err := scanWindow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan window: %w", ErrScanRow, err)
	}

	return window, nil
}

// List получает все окна доступности
func (r *Repository) List(ctx context.Context) ([]*domain.AvailabilityWindow, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From("availability_windows").
		OrderBy("recurring ASC", "start_time ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "List", query, args)
}

// ListCoverageCandidates получает окна, которые могут покрыть [start, end):
// все повторяющиеся окна и разовые окна, целиком содержащие интервал.
// Окончательное решение по повторяющимся окнам принимает availability.Index.
func (r *Repository) ListCoverageCandidates(ctx context.Context, start, end time.Time) ([]*domain.AvailabilityWindow, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From("availability_windows").
		Where(squirrel.Or{
			squirrel.Eq{"recurring": true},
			squirrel.And{
				squirrel.LtOrEq{"start_time": start.UTC()},
				squirrel.GtOrEq{"end_time": end.UTC()},
			},
		}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCoverageCandidates - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "ListCoverageCandidates", query, args)
}

// Update сохраняет окно доступности целиком
func (r *Repository) Update(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_windows").
		Set("start_time", window.Start.UTC()).
		Set("end_time", window.End.UTC()).
		Set("recurring", window.Recurring).
		Set("days_of_week", toArray(window.DaysOfWeek)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": window.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	window.UpdatedAt = updatedAt.Time
	return window, nil
}

// Delete удаляет окно доступности. Существующие бронирования не затрагиваются.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_windows").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	windows := make([]*domain.AvailabilityWindow, 0)
	for rows.Next() {
		window, err := scanWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		windows = append(windows, window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return windows, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWindow(row rowScanner) (*domain.AvailabilityWindow, error) {
	var window domain.AvailabilityWindow
	var days pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&window.ID,
		&window.Start,
		&window.End,
		&window.Recurring,
		&days,
		&window.OwnerID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	window.DaysOfWeek = make([]int, 0, len(days))
	for _, d := range days {
		window.DaysOfWeek = append(window.DaysOfWeek, int(d))
	}
	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return &window, nil
}

func toArray(days []int) pq.Int64Array {
	arr := make(pq.Int64Array, 0, len(days))
	for _, d := range days {
		arr = append(arr, int64(d))
	}
	return arr
}
