package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chalkboard/user-service/internal/domain/entity"
	"github.com/chalkboard/user-service/internal/domain/repository"
)

var userColumns = []string{"id", "username", "email", "first_name", "last_name", "date_created", "date_updated"}

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// translateError maps a pgx error to the domain taxonomy. Unique violations
// (23505) become a ConflictError carrying the column the violated
// constraint is named after.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "username"):
			return &repository.ConflictError{Field: "username"}
		case strings.Contains(pgErr.ConstraintName, "email"):
			return &repository.ConflictError{Field: "email"}
		default:
			return &repository.ConflictError{}
		}
	}
	return err
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName,
		&u.DateCreated, &u.DateUpdated)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	now := time.Now().UTC()
	u.DateCreated = now
	u.DateUpdated = now

	query, args, err := sq.Insert("users").
		Columns("username", "email", "first_name", "last_name", "date_created", "date_updated").
		Values(u.Username, u.Email, u.FirstName, u.LastName, u.DateCreated, u.DateUpdated).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.QueryRow(ctx, query, args...).Scan(&u.ID); err != nil {
		return translateError(err)
	}
	return tx.Commit(ctx)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query, args, err := sq.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	u, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	query, args, err := sq.Select(userColumns...).
		From("users").
		OrderBy("id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, fields repository.UpdateFields) (*entity.User, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query, args, err := sq.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	u, err := scanUser(tx.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, err
	}

	if fields.Username != nil {
		u.Username = *fields.Username
	}
	if fields.Email != nil {
		u.Email = *fields.Email
	}
	if fields.FirstName != nil {
		u.FirstName = *fields.FirstName
	}
	if fields.LastName != nil {
		u.LastName = *fields.LastName
	}
	u.DateUpdated = time.Now().UTC()

	query, args, err = sq.Update("users").
		Set("username", u.Username).
		Set("email", u.Email).
		Set("first_name", u.FirstName).
		Set("last_name", u.LastName).
		Set("date_updated", u.DateUpdated).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return nil, translateError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("users").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrUserNotFound
	}
	return tx.Commit(ctx)
}

var _ repository.UserRepository = (*UserRepository)(nil)
