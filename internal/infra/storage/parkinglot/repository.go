package parkinglot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

// Repository репозиторий для работы с парковками
// Помимо CRUD содержит операции учета доступности (Reserve/Release/Snapshot):
// счетчик available_spots меняется только здесь, атомарными UPDATE
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория парковок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую парковку
// Счетчик свободных мест инициализируется равным вместимости
func (r *Repository) Create(ctx context.Context, lot *domain.ParkingLot) (*domain.ParkingLot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("parking_lots").
		Columns(
			"name",
			"location",
			"capacity",
			"available_spots",
			"price_per_hour",
		).
		Values(
			lot.Name,
			lot.Location,
			lot.Capacity,
			lot.AvailableSpots,
			lot.PricePerHour,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&lot.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	lot.CreatedAt = createdAt.Time
	lot.UpdatedAt = updatedAt.Time

	return lot, nil
}

// GetByID получает парковку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ParkingLot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"location",
		"capacity",
		"available_spots",
		"price_per_hour",
		"created_at",
		"updated_at",
	).
		From("parking_lots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var lot domain.ParkingLot
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&lot.ID,
		&lot.Name,
		&lot.Location,
		&lot.Capacity,
		&lot.AvailableSpots,
		&lot.PricePerHour,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrLotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan parking lot: %v", ErrScanRow, err)
	}

	lot.CreatedAt = createdAt.Time
	lot.UpdatedAt = updatedAt.Time

	return &lot, nil
}

// List получает список всех парковок
func (r *Repository) List(ctx context.Context) ([]*domain.ParkingLot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"location",
		"capacity",
		"available_spots",
		"price_per_hour",
		"created_at",
		"updated_at",
	).
		From("parking_lots").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	lots := make([]*domain.ParkingLot, 0)
	for rows.Next() {
		var lot domain.ParkingLot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&lot.ID,
			&lot.Name,
			&lot.Location,
			&lot.Capacity,
			&lot.AvailableSpots,
			&lot.PricePerHour,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		lot.CreatedAt = createdAt.Time
		lot.UpdatedAt = updatedAt.Time

		lots = append(lots, &lot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return lots, nil
}

// Reserve атомарно резервирует одно место на парковке
// Проверка available_spots > 0 и декремент выполняются одним UPDATE,
// поэтому два конкурентных резервирования последнего места не могут
// пройти оба. Возвращает ErrNoAvailableSpots, если свободных мест нет
func (r *Repository) Reserve(ctx context.Context, lotID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_lots").
		Set("available_spots", squirrel.Expr("available_spots - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": lotID}).
		Where(squirrel.Expr("available_spots > 0")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reserve - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reserve - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо парковки нет, либо мест нет - различаем отдельным чтением
		if _, err := r.GetByID(ctx, lotID); err != nil {
			return err
		}
		return ErrNoAvailableSpots
	}

	return nil
}

// Release возвращает одно место в пул парковки
// Инкремент ограничен вместимостью (LEAST), поэтому повторный Release
// по уже полной парковке - no-op, а не переполнение: это защита от
// дублированных вызовов при ретраях отмены
func (r *Repository) Release(ctx context.Context, lotID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_lots").
		Set("available_spots", squirrel.Expr("LEAST(available_spots + 1, capacity)")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": lotID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrLotNotFound
	}

	return nil
}

// Snapshot возвращает read-only срез доступности парковки
func (r *Repository) Snapshot(ctx context.Context, lotID int64) (*domain.LotSnapshot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"capacity",
		"available_spots",
	).
		From("parking_lots").
		Where(squirrel.Eq{"id": lotID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Snapshot - build select query: %v", ErrBuildQuery, err)
	}

	var snapshot domain.LotSnapshot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&snapshot.Capacity,
		&snapshot.AvailableSpots,
	)

	if err == sql.ErrNoRows {
		return nil, ErrLotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Snapshot - scan snapshot: %v", ErrScanRow, err)
	}

	return &snapshot, nil
}
