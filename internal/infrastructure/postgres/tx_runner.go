package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/maletas-pro/internal/application/usecase"
	"github.com/jhoicas/maletas-pro/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Todo o nada: cualquier error de fn deshace lo escrito.
func (r *TxRunner) Run(ctx context.Context, fn func(
	caseRepo repository.CaseRepository,
	itemRepo repository.ItemRepository,
	sellerRepo repository.SellerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	caseRepo := NewCaseRepository(tx)
	itemRepo := NewItemRepository(tx)
	sellerRepo := NewSellerRepository(tx)

	if err := fn(caseRepo, itemRepo, sellerRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
