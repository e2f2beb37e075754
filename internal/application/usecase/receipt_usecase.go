package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/maletas-pro/internal/application/ports"
	"github.com/jhoicas/maletas-pro/internal/domain"
	"github.com/jhoicas/maletas-pro/internal/domain/entity"
	"github.com/jhoicas/maletas-pro/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una maleta.
type ReceiptUseCase struct {
	cases     repository.CaseRepository
	items     repository.ItemRepository
	sellers   repository.SellerRepository
	generator ports.CaseReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	cases repository.CaseRepository,
	items repository.ItemRepository,
	sellers repository.SellerRepository,
	generator ports.CaseReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{cases: cases, items: items, sellers: sellers, generator: generator}
}

// Generate arma el PDF con la maleta, su vendedora y sus piezas.
func (uc *ReceiptUseCase) Generate(ctx context.Context, caseID string) ([]byte, error) {
	c, err := uc.cases.GetByID(caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	var seller *entity.Seller
	if c.SellerID != nil {
		seller, err = uc.sellers.GetByID(*c.SellerID)
		if err != nil {
			return nil, err
		}
	}

	items, err := uc.items.ListByCase(caseID)
	if err != nil {
		return nil, err
	}

	pdf, err := uc.generator.GenerateReceipt(ctx, c, seller, items)
	if err != nil {
		return nil, fmt.Errorf("comprobante de maleta: %w", err)
	}
	return pdf, nil
}
