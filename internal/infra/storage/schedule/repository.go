package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/mcozcn/salondesk/internal/domain"
	"github.com/mcozcn/salondesk/pkg/dbmetrics"
	"github.com/mcozcn/salondesk/pkg/psqlbuilder"
)

// scheduleColumns колонки таблицы group_schedules.
// Имена на стороне БД в snake_case: group_type / time_slot соответствуют
// полям Group / TimeSlot доменной модели.
var scheduleColumns = []string{
	"id",
	"customer_id",
	"customer_name",
	"group_type",
	"time_slot",
	"start_date",
	"end_date",
	"is_active",
	"created_at",
}

// Repository репозиторий для работы с записями группового расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись расписания.
// Идентификатор и created_at назначает БД (RETURNING).
// Если в контексте передана активная транзакция, использует её -
// это нужно для проверки вместимости слота перед вставкой.
func (r *Repository) Create(ctx context.Context, sched *domain.GroupSchedule) (*domain.GroupSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("group_schedules").
		Columns(
			"customer_id",
			"customer_name",
			"group_type",
			"time_slot",
			"start_date",
			"end_date",
			"is_active",
		).
		Values(
			sched.CustomerID,
			sched.CustomerName,
			sched.Group,
			sched.TimeSlot.String(),
			sched.StartDate,
			sched.EndDate,
			sched.IsActive,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id string
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sched.ID = domain.NewRemoteScheduleID(id)
	sched.CreatedAt = createdAt.Time

	return sched, nil
}

// List получает все записи расписания, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.GroupSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("group_schedules").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// GetActiveByCustomer получает активную запись расписания клиента.
// По инварианту данных у клиента не больше одной активной записи;
// на случай нарушения берется самая свежая.
func (r *Repository) GetActiveByCustomer(ctx context.Context, customerID string) (*domain.GroupSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("group_schedules").
		Where(squirrel.Eq{"customer_id": customerID, "is_active": true}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	sched, err := r.scanSchedule(row)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCustomer - scan schedule: %v", ErrScanRow, err)
	}

	return sched, nil
}

// GetActiveBySlot получает активные записи для пары (группа, временной слот).
// Внутри транзакции добавляет FOR UPDATE, чтобы параллельные записи в последний
// свободный слот не прошли проверку вместимости одновременно.
func (r *Repository) GetActiveBySlot(ctx context.Context, group domain.GroupType, timeSlot string) ([]*domain.GroupSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("group_schedules").
		Where(squirrel.Eq{
			"group_type": group,
			"time_slot":  timeSlot,
			"is_active":  true,
		}).
		OrderBy("created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBySlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBySlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// Update применяет частичное обновление записи расписания.
// Пишутся только переданные (не-nil) поля.
func (r *Repository) Update(ctx context.Context, id string, update domain.ScheduleUpdate) error {
	if update.IsEmpty() {
		return ErrEmptyUpdate
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("group_schedules").
		Where(squirrel.Eq{"id": id})

	if update.CustomerName != nil {
		updateBuilder = updateBuilder.Set("customer_name", *update.CustomerName)
	}
	if update.Group != nil {
		updateBuilder = updateBuilder.Set("group_type", *update.Group)
	}
	if update.TimeSlot != nil {
		updateBuilder = updateBuilder.Set("time_slot", update.TimeSlot.String())
	}
	if update.StartDate != nil {
		updateBuilder = updateBuilder.Set("start_date", *update.StartDate)
	}
	if update.EndDate != nil {
		updateBuilder = updateBuilder.Set("end_date", *update.EndDate)
	}
	if update.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *update.IsActive)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// Delete удаляет запись расписания (физическое удаление, использовать осторожно).
// Для освобождения места в слоте использовать деактивацию через Update -
// она сохраняет историю посещений.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("group_schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSchedule сканирует одну запись расписания
func (r *Repository) scanSchedule(row rowScanner) (*domain.GroupSchedule, error) {
	var sched domain.GroupSchedule
	var id string
	var endDate sql.NullTime
	var createdAt sql.NullTime

	err := row.Scan(
		&id,
		&sched.CustomerID,
		&sched.CustomerName,
		&sched.Group,
		&sched.TimeSlot,
		&sched.StartDate,
		&endDate,
		&sched.IsActive,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	sched.ID = domain.NewRemoteScheduleID(id)
	if endDate.Valid {
		sched.EndDate = &endDate.Time
	}
	sched.CreatedAt = createdAt.Time

	return &sched, nil
}

// scanSchedules сканирует результаты запроса в слайс записей расписания
func (r *Repository) scanSchedules(rows *sql.Rows) ([]*domain.GroupSchedule, error) {
	schedules := make([]*domain.GroupSchedule, 0)

	for rows.Next() {
		sched, err := r.scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, sched)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}
