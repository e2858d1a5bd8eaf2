package leaderboard_repo

import (
	"context"

	"richcase_backend/internal/model"
	"richcase_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table       = "leaderboard"
	colUserID   = "user_id"
	colUsername = "username"
	colOpened   = "opened"
	colSpent    = "spent"
	colEarned   = "earned"
	colAvatar   = "avatar"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewLeaderboardRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.LeaderboardRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// Publish - перезаписывает проекцию аккаунта в таблице лидеров.
// Запись создается при первой публикации и дальше только обновляется
func (r *repo) Publish(ctx context.Context, entry model.LeaderboardEntry) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colUsername, colOpened, colSpent, colEarned, colAvatar).
		Values(entry.UserID, entry.Username, entry.Stats.Opened, entry.Stats.Spent, entry.Stats.Earned, entry.Avatar).
		Suffix("ON CONFLICT (" + colUserID + ") DO UPDATE SET " +
			colUsername + " = EXCLUDED." + colUsername + ", " +
			colOpened + " = EXCLUDED." + colOpened + ", " +
			colSpent + " = EXCLUDED." + colSpent + ", " +
			colEarned + " = EXCLUDED." + colEarned + ", " +
			colAvatar + " = EXCLUDED." + colAvatar).
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

// Top - возвращает топ игроков по заработанным звёздам
func (r *repo) Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	// Формируем запрос
	query := sq.Select(colUserID, colUsername, colOpened, colSpent, colEarned, colAvatar).
		From(table).
		OrderBy(colEarned + " DESC").
		Limit(uint64(limit)).
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

	entries := make([]model.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var entry model.LeaderboardEntry
		err = rows.Scan(&entry.UserID, &entry.Username, &entry.Stats.Opened, &entry.Stats.Spent, &entry.Stats.Earned, &entry.Avatar)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
