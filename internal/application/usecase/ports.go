package usecase

import (
	"context"

	"github.com/jhoicas/maletas-pro/internal/domain/repository"
)

// TxRunner ejecuta una función con repositorios atados a una misma transacción.
// Si fn devuelve error, nada persiste (rollback); si no, se hace commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		caseRepo repository.CaseRepository,
		itemRepo repository.ItemRepository,
		sellerRepo repository.SellerRepository,
	) error) error
}
