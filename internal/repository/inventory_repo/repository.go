package inventory_repo

import (
	"context"
	"errors"

	"richcase_backend/internal/model"
	"richcase_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "inventory"
	colInstanceID = "instance_id"
	colUserID     = "user_id"
	colItemName   = "item_name"
	colRarity     = "rarity"
	colPrice      = "price"
	colImage      = "image"
	colAcquiredAt = "acquired_at"
)

// ErrItemNotFound Предмета с таким instance_id у пользователя нет
var ErrItemNotFound = errors.New("inventory item not found")

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewInventoryRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.InventoryRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// AddItem - зачисляет предмет в инвентарь пользователя
func (r *repo) AddItem(ctx context.Context, userID int, item model.DrawnItem) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colInstanceID, colUserID, colItemName, colRarity, colPrice, colImage, colAcquiredAt).
		Values(item.InstanceID, userID, item.Name, string(item.Rarity), item.Price, item.Image, item.AcquiredAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetItem - возвращает предмет пользователя по instance_id.
// Если предмета нет (уже продан) — ErrItemNotFound
func (r *repo) GetItem(ctx context.Context, userID int, instanceID string) (*model.DrawnItem, error) {
	// Формируем запрос
	query := sq.Select(colInstanceID, colItemName, colRarity, colPrice, colImage, colAcquiredAt).
		From(table).
		Where(sq.Eq{colUserID: userID, colInstanceID: instanceID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var item model.DrawnItem
	var rarity string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&item.InstanceID,
		&item.Name,
		&rarity,
		&item.Price,
		&item.Image,
		&item.AcquiredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	item.Rarity = model.Rarity(rarity)
	return &item, nil
}

// DeleteItem - удаляет предмет из инвентаря по instance_id
func (r *repo) DeleteItem(ctx context.Context, userID int, instanceID string) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colUserID: userID, colInstanceID: instanceID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

// DeleteAll - очищает инвентарь пользователя. Пустой инвентарь — не ошибка
func (r *repo) DeleteAll(ctx context.Context, userID int) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// ListItems - возвращает инвентарь пользователя, последние зачисления первыми
func (r *repo) ListItems(ctx context.Context, userID int) ([]model.DrawnItem, error) {
	// Формируем запрос
	query := sq.Select(colInstanceID, colItemName, colRarity, colPrice, colImage, colAcquiredAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colAcquiredAt + " DESC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DrawnItem, 0)
	for rows.Next() {
		var item model.DrawnItem
		var rarity string
		err = rows.Scan(&item.InstanceID, &item.Name, &rarity, &item.Price, &item.Image, &item.AcquiredAt)
		if err != nil {
			return nil, err
		}
		item.Rarity = model.Rarity(rarity)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
