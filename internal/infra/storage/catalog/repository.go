package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	"github.com/m04kA/SMC-BannerCaseService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BannerCaseService/pkg/psqlbuilder"
)

// Repository PostgreSQL справочник площадок, бронирований и юбилейных пакетов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAreaSlots возвращает площадки по фильтру
func (r *Repository) ListAreaSlots(ctx context.Context, filter domain.CatalogFilter) ([]domain.AreaSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "area", "area_group", "prefecture").
		From("area_slots").
		OrderBy("sort_order", "id")

	if filter.Prefecture != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"prefecture": filter.Prefecture})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAreaSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAreaSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.AreaSlot, 0)
	for rows.Next() {
		var a domain.AreaSlot
		if err := rows.Scan(&a.ID, &a.Area, &a.AreaGroup, &a.Prefecture); err != nil {
			return nil, fmt.Errorf("%w: ListAreaSlots - scan area slot: %v", ErrScanRow, err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAreaSlots - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetAreaSlot возвращает площадку по ID
func (r *Repository) GetAreaSlot(ctx context.Context, id string) (domain.AreaSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "area", "area_group", "prefecture").
		From("area_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return domain.AreaSlot{}, fmt.Errorf("%w: GetAreaSlot - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.AreaSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.Area, &a.AreaGroup, &a.Prefecture)
	if err == sql.ErrNoRows {
		return domain.AreaSlot{}, fmt.Errorf("%w: %s", ErrAreaSlotNotFound, id)
	}
	if err != nil {
		return domain.AreaSlot{}, fmt.Errorf("%w: GetAreaSlot - scan area slot: %v", ErrScanRow, err)
	}

	return a, nil
}

// ListBookings возвращает бронирования, пересекающиеся с [from, to]
func (r *Repository) ListBookings(ctx context.Context, from, to time.Time, filter domain.CatalogFilter) ([]domain.SlotBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"area_slot_id",
		"banner_type",
		"hall_name",
		"start_date",
		"end_date",
		"start_hour",
		"end_hour",
		"booking_status",
	).
		From("slot_bookings").
		Where(squirrel.LtOrEq{"start_date": domain.DateOnly(to)}).
		Where(squirrel.GtOrEq{"end_date": domain.DateOnly(from)}).
		OrderBy("start_date", "id")

	if filter.BannerType != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"banner_type": string(filter.BannerType)})
	}
	if filter.BookingStatus != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_status": string(filter.BookingStatus)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.SlotBooking, 0)
	for rows.Next() {
		var (
			b                         domain.SlotBooking
			bannerType, bookingStatus string
		)
		err := rows.Scan(
			&b.ID,
			&b.AreaSlotID,
			&bannerType,
			&b.HallName,
			&b.StartDate,
			&b.EndDate,
			&b.StartHour,
			&b.EndHour,
			&bookingStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBookings - scan booking: %v", ErrScanRow, err)
		}
		b.BannerType = domain.BannerType(bannerType)
		b.BookingStatus = domain.BookingStatus(bookingStatus)
		b.StartDate = domain.DateOnly(b.StartDate)
		b.EndDate = domain.DateOnly(b.EndDate)
		result = append(result, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookings - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListAnniversaryPacks возвращает пакеты компании, ближайший срок первым
// Пустое имя - все пакеты
func (r *Repository) ListAnniversaryPacks(ctx context.Context, corporateName string) ([]domain.AnniversaryPack, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "corporate_name", "title", "expiry_date", "remaining_amount").
		From("anniversary_packs").
		OrderBy("expiry_date", "id")

	if corporateName != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"corporate_name": corporateName})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAnniversaryPacks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAnniversaryPacks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.AnniversaryPack, 0)
	for rows.Next() {
		var p domain.AnniversaryPack
		if err := rows.Scan(&p.ID, &p.CorporateName, &p.Title, &p.ExpiryDate, &p.RemainingAmount); err != nil {
			return nil, fmt.Errorf("%w: ListAnniversaryPacks - scan pack: %v", ErrScanRow, err)
		}
		p.ExpiryDate = domain.DateOnly(p.ExpiryDate)
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAnniversaryPacks - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetAnniversaryPack возвращает пакет по ID
func (r *Repository) GetAnniversaryPack(ctx context.Context, id string) (domain.AnniversaryPack, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "corporate_name", "title", "expiry_date", "remaining_amount").
		From("anniversary_packs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return domain.AnniversaryPack{}, fmt.Errorf("%w: GetAnniversaryPack - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.AnniversaryPack
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CorporateName, &p.Title, &p.ExpiryDate, &p.RemainingAmount)
	if err == sql.ErrNoRows {
		return domain.AnniversaryPack{}, fmt.Errorf("%w: %s", ErrPackNotFound, id)
	}
	if err != nil {
		return domain.AnniversaryPack{}, fmt.Errorf("%w: GetAnniversaryPack - scan pack: %v", ErrScanRow, err)
	}
	p.ExpiryDate = domain.DateOnly(p.ExpiryDate)

	return p, nil
}
