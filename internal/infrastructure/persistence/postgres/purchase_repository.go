package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/avolkov/storefront-service/internal/domain/cart"
	"github.com/avolkov/storefront-service/internal/infrastructure/monitoring"
	"github.com/avolkov/storefront-service/internal/pkg/generator"
)

type PurchaseRepository struct {
	db  *sql.DB
	ids *generator.IDGenerator
}

func NewPurchaseRepository(conn *Connection, ids *generator.IDGenerator) *PurchaseRepository {
	return &PurchaseRepository{
		db:  conn.GetDB(),
		ids: ids,
	}
}

// CreatePurchase inserts the purchase and all its lines in one transaction.
// Either the whole purchase is persisted or none of it is.
func (r *PurchaseRepository) CreatePurchase(ctx context.Context, accountID string, lines []cart.CheckoutLine) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", remoteError("create purchase", err)
	}
	defer tx.Rollback()

	purchaseID := r.ids.PurchaseID()

	var grandTotal float64
	var itemCount int
	for _, line := range lines {
		grandTotal += line.UnitCost * float64(line.Quantity)
		itemCount += line.Quantity
	}

	_, err = monitoring.InstrumentTxExec(ctx, tx, "INSERT", "purchases", `
		INSERT INTO purchases (id, account_id, grand_total, item_count, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, purchaseID, accountID, grandTotal, itemCount, time.Now().UTC())
	if err != nil {
		return "", remoteError("create purchase", err)
	}

	for _, line := range lines {
		_, err = monitoring.InstrumentTxExec(ctx, tx, "INSERT", "purchase_lines", `
			INSERT INTO purchase_lines (purchase_id, item_id, quantity, unit_cost)
			VALUES ($1, $2, $3, $4)
		`, purchaseID, line.ItemID, line.Quantity, line.UnitCost)
		if err != nil {
			return "", remoteError("create purchase line", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", remoteError("create purchase", err)
	}

	return purchaseID, nil
}
