package postgres

import (
	"context"
	"database/sql"

	"github.com/avolkov/storefront-service/internal/domain/catalog"
	domainErrors "github.com/avolkov/storefront-service/internal/domain/errors"
	"github.com/avolkov/storefront-service/internal/infrastructure/monitoring"
)

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(conn *Connection) *ItemRepository {
	return &ItemRepository{db: conn.GetDB()}
}

func (r *ItemRepository) ListItems(ctx context.Context) ([]catalog.Item, error) {
	query := `
		SELECT id, name, description, item_type, family, price, image_url, COALESCE(account_id, ''), created_at
		FROM items
		ORDER BY created_at, id
	`

	rows, err := monitoring.InstrumentQuery(ctx, r.db, "SELECT", "items", query)
	if err != nil {
		return nil, remoteError("list items", err)
	}
	defer rows.Close()

	var items []catalog.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, remoteError("list items", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, remoteError("list items", err)
	}

	return items, nil
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id string) (*catalog.Item, error) {
	query := `
		SELECT id, name, description, item_type, family, price, image_url, COALESCE(account_id, ''), created_at
		FROM items
		WHERE id = $1
	`

	row := monitoring.InstrumentQueryRow(ctx, r.db, "SELECT", "items", query, id)
	item, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domainErrors.ErrItemNotFound
		}
		return nil, remoteError("get item", err)
	}

	return item, nil
}

func (r *ItemRepository) CreateItem(ctx context.Context, item *catalog.Item) error {
	query := `
		INSERT INTO items (id, name, description, item_type, family, price, image_url, account_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9)
	`

	var price sql.NullFloat64
	if item.Price != nil {
		price = sql.NullFloat64{Float64: *item.Price, Valid: true}
	}

	_, err := monitoring.InstrumentExec(ctx, r.db, "INSERT", "items", query,
		item.ID, item.Name, item.Description, item.Type, item.Family,
		price, item.ImageURL, item.AccountID, item.CreatedAt,
	)
	if err != nil {
		return remoteError("create item", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*catalog.Item, error) {
	var item catalog.Item
	var price sql.NullFloat64

	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Type, &item.Family,
		&price, &item.ImageURL, &item.AccountID, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		item.Price = &price.Float64
	}

	return &item, nil
}
