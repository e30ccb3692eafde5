package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

// bookingColumns полный набор колонок бронирования для SELECT
var bookingColumns = []string{
	"id",
	"parking_lot_id",
	"user_id",
	"spot_type",
	"spot_number",
	"start_time",
	"end_time",
	"duration_hours",
	"total_price",
	"status",
	"lot_name",
	"lot_location",
	"payment_method",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
// Бронирования никогда не удаляются физически: отмена и завершение - это
// смена статуса, история сохраняется для аудита
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"parking_lot_id",
			"user_id",
			"spot_type",
			"spot_number",
			"start_time",
			"end_time",
			"duration_hours",
			"total_price",
			"status",
			"lot_name",
			"lot_location",
			"payment_method",
		).
		Values(
			booking.ParkingLotID,
			booking.UserID,
			booking.SpotType,
			booking.SpotNumber,
			booking.StartTime,
			booking.EndTime,
			booking.DurationHours,
			booking.TotalPrice,
			booking.Status,
			booking.LotName,
			booking.LotLocation,
			booking.PaymentMethod,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Если statuses не пуст, фильтрует по перечисленным статусам
// Сортировка - сначала новые
func (r *Repository) GetByUserID(ctx context.Context, userID int64, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_time DESC, id DESC")

	if len(statuses) > 0 {
		statusStrings := make([]string, len(statuses))
		for i, s := range statuses {
			statusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListDue получает бронирования, окно которых истекло, но место ещё удерживается
// (status in active/confirmed, end_time <= now)
// Внутри транзакции блокирует строки (FOR UPDATE), чтобы конкурентные sweep'ы
// не обрабатывали одни и те же бронирования
func (r *Repository) ListDue(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": activeStatusStrings}).
		Where(squirrel.LtOrEq{"end_time": now}).
		OrderBy("end_time ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE SKIP LOCKED")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Cancel переводит бронирование в статус cancelled (compare-and-set)
// Обновление проходит только из статусов active/confirmed, поэтому гонка
// отмены с завершением не может отменить уже завершённое бронирование.
// Возвращает true, если переход выполнен этим вызовом
func (r *Repository) Cancel(ctx context.Context, id int64) (bool, error) {
	return r.updateStatusFrom(ctx, "Cancel", id, domain.ActiveStatuses, func(b squirrel.UpdateBuilder) squirrel.UpdateBuilder {
		return b.
			Set("status", domain.StatusCancelled).
			Set("cancelled_at", squirrel.Expr("NOW()"))
	})
}

// Complete переводит бронирование в статус completed (compare-and-set)
// Возвращает true, если переход выполнен этим вызовом
func (r *Repository) Complete(ctx context.Context, id int64) (bool, error) {
	return r.updateStatusFrom(ctx, "Complete", id, domain.ActiveStatuses, func(b squirrel.UpdateBuilder) squirrel.UpdateBuilder {
		return b.Set("status", domain.StatusCompleted)
	})
}

// Confirm переводит бронирование из active в confirmed после успешной оплаты
// Возвращает true, если переход выполнен этим вызовом
func (r *Repository) Confirm(ctx context.Context, id int64, paymentMethod string) (bool, error) {
	from := []domain.BookingStatus{domain.StatusActive}
	return r.updateStatusFrom(ctx, "Confirm", id, from, func(b squirrel.UpdateBuilder) squirrel.UpdateBuilder {
		return b.
			Set("status", domain.StatusConfirmed).
			Set("payment_method", paymentMethod)
	})
}

// updateStatusFrom выполняет compare-and-set перехода статуса:
// UPDATE проходит только если текущий статус входит в from
func (r *Repository) updateStatusFrom(
	ctx context.Context,
	op string,
	id int64,
	from []domain.BookingStatus,
	set func(squirrel.UpdateBuilder) squirrel.UpdateBuilder,
) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	fromStrings := make([]string, len(from))
	for i, s := range from {
		fromStrings[i] = string(s)
	}

	updateBuilder := set(psqlbuilder.Update("bookings")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": fromStrings})

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	return rowsAffected > 0, nil
}

// scanBooking сканирует одну строку бронирования
func (r *Repository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ParkingLotID,
		&booking.UserID,
		&booking.SpotType,
		&booking.SpotNumber,
		&booking.StartTime,
		&booking.EndTime,
		&booking.DurationHours,
		&booking.TotalPrice,
		&booking.Status,
		&booking.LotName,
		&booking.LotLocation,
		&booking.PaymentMethod,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ParkingLotID,
			&booking.UserID,
			&booking.SpotType,
			&booking.SpotNumber,
			&booking.StartTime,
			&booking.EndTime,
			&booking.DurationHours,
			&booking.TotalPrice,
			&booking.Status,
			&booking.LotName,
			&booking.LotLocation,
			&booking.PaymentMethod,
			&booking.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
