package user_repo

import (
	"context"
	"time"

	"richcase_backend/internal/model"
	"richcase_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "users"
	colID           = "id"
	colName         = "name"
	colLogin        = "login"
	colPasswordHash = "password_hash"
	colBalance      = "balance"
	colOpened       = "opened"
	colSpent        = "spent"
	colEarned       = "earned"
	colCreatedAt    = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateUser - создает нового пользователя со стартовым балансом и нулевой
// статистикой. Возвращает ID созданного пользователя
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colName, colLogin, colPasswordHash, colBalance, colCreatedAt).
		Values(user.Name, user.Login, user.Password, user.Balance, time.Now()).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetUserByLogin - возвращает модель пользователя по его логину
func (r *repo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colLogin: login})
}

// GetUserByID - возвращает модель пользователя по его ID
func (r *repo) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colID: id})
}

func (r *repo) getUser(ctx context.Context, where sq.Eq) (*model.User, error) {
	// Формируем запрос
	query := sq.Select(colID, colName, colLogin, colPasswordHash, colBalance, colOpened, colSpent, colEarned, colCreatedAt).
		From(table).
		Where(where).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Login,
		&user.Password,
		&user.Balance,
		&user.Stats.Opened,
		&user.Stats.Spent,
		&user.Stats.Earned,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetLedgerForUpdate - читает баланс и статистику пользователя с блокировкой
// строки (FOR UPDATE). Конкурентная транзакция по тому же аккаунту будет
// ждать коммита и увидит уже обновленный баланс
func (r *repo) GetLedgerForUpdate(ctx context.Context, id int) (int64, model.Stats, error) {
	// Формируем запрос
	query := sq.Select(colBalance, colOpened, colSpent, colEarned).
		From(table).
		Where(sq.Eq{colID: id}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, model.Stats{}, err
	}

	var balance int64
	var stats model.Stats
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance, &stats.Opened, &stats.Spent, &stats.Earned)
	if err != nil {
		return 0, model.Stats{}, err
	}

	return balance, stats, nil
}

// UpdateLedger - записывает баланс и статистику одним UPDATE.
// Баланс и статистика меняются только вместе, отдельных записей нет
func (r *repo) UpdateLedger(ctx context.Context, id int, balance int64, stats model.Stats) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colBalance, balance).
		Set(colOpened, stats.Opened).
		Set(colSpent, stats.Spent).
		Set(colEarned, stats.Earned).
		Where(sq.Eq{colID: id}).
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
