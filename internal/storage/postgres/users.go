package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

func (r *userRepository) Create(ctx context.Context, login, passwordHash string, role model.Role, referralCode string, referredBy *int64) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash, role, referral_code, referred_by)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	u := model.User{Login: login, PasswordHash: passwordHash, Role: role, ReferralCode: referralCode, ReferredBy: referredBy}
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash, role, referralCode, referredBy).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, referral_code, referred_by, created_at
                   FROM users WHERE login=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, login))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, referral_code, referred_by, created_at
                   FROM users WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByReferralCode(ctx context.Context, code string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, referral_code, referred_by, created_at
                   FROM users WHERE referral_code=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, code))
}

func (r *userRepository) scanOne(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.ReferralCode, &u.ReferredBy, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
