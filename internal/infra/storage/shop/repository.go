package shop

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	"github.com/m04kA/SMC-TimeslotService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-TimeslotService/pkg/types"
)

// Repository репозиторий для чтения информации о салоне и часов работы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория салона
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetShopInfo получает запись о салоне вместе с недельным расписанием.
// Сервис обслуживает один салон, поэтому берется первая запись по id.
func (r *Repository) GetShopInfo(ctx context.Context) (*domain.ShopInfo, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"description",
		"email",
		"phone_number",
	).
		From("shop_info").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetShopInfo - build select query: %v", ErrBuildQuery, err)
	}

	var shop domain.ShopInfo
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&shop.ID,
		&shop.Description,
		&shop.Email,
		&shop.PhoneNumber,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetShopInfo - scan shop: %v", ErrScanRow, err)
	}

	hours, err := r.getOpeningHours(ctx, shop.ID)
	if err != nil {
		return nil, err
	}
	shop.OpeningHours = hours

	return &shop, nil
}

// getOpeningHours получает часы работы салона по дням недели
func (r *Repository) getOpeningHours(ctx context.Context, shopID string) ([]domain.OpeningHours, error) {
	query, args, err := psqlbuilder.Select(
		"day",
		"opening_time",
		"closing_time",
		"opened",
	).
		From("shop_opening_hours").
		Where(squirrel.Eq{"shop_id": shopID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOpeningHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getOpeningHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]domain.OpeningHours, 0, 7)
	for rows.Next() {
		var (
			day string
			h   domain.OpeningHours
		)

		if err := rows.Scan(&day, &h.OpeningTime, &h.ClosingTime, &h.Opened); err != nil {
			return nil, fmt.Errorf("%w: getOpeningHours - scan row: %v", ErrScanRow, err)
		}

		h.Day, err = types.ParseWeekday(day)
		if err != nil {
			return nil, fmt.Errorf("%w: getOpeningHours - shop %s: %v", ErrScanRow, shopID, err)
		}

		hours = append(hours, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getOpeningHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}
