package postgres

import (
	"context"
	"database/sql"

	"github.com/avolkov/storefront-service/internal/domain/account"
	domainErrors "github.com/avolkov/storefront-service/internal/domain/errors"
	"github.com/avolkov/storefront-service/internal/infrastructure/monitoring"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(conn *Connection) *AccountRepository {
	return &AccountRepository{db: conn.GetDB()}
}

func (r *AccountRepository) GetAccountContext(ctx context.Context, accountID string) (*account.Context, error) {
	query := `
		SELECT id, name, is_manager, created_at
		FROM accounts
		WHERE id = $1
	`

	var acct account.Context
	row := monitoring.InstrumentQueryRow(ctx, r.db, "SELECT", "accounts", query, accountID)
	err := row.Scan(&acct.ID, &acct.Name, &acct.IsManager, &acct.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domainErrors.ErrAccountNotFound
		}
		return nil, remoteError("get account", err)
	}

	return &acct, nil
}
