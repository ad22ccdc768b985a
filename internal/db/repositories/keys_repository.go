package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"airport-booking/concourse/internal/constants"
	"airport-booking/concourse/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

var ErrUnknownEmail = errors.New("no user with that email")

type KeysRepo struct {
	db *sqlx.DB
}

func NewApiKeysRepo(db *sqlx.DB) *KeysRepo {
	return &KeysRepo{db}
}

// GetStatus resolves a raw key to its row and owner flags. Unknown keys return (nil, nil).
func (r *KeysRepo) GetStatus(ctx context.Context, key string) (*entities.ApiKey, error) {
	var keyRes entities.ApiKey

	err := r.db.QueryRowxContext(ctx, r.db.Rebind(constants.GetAPIKeyWithOwner), key).StructScan(&keyRes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &keyRes, nil
}

// Insert stores key for the user owning email
func (r *KeysRepo) Insert(ctx context.Context, key, email string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(constants.InsertAPIKeyForEmail), key, email)
	if err != nil {
		return fmt.Errorf("failed to insert api key: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUnknownEmail
	}
	return nil
}

func (r *KeysRepo) Deactivate(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(constants.DeactivateAPIKey), key)
	return err
}
