package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/maletas-pro/internal/application/dto"
	"github.com/jhoicas/maletas-pro/internal/domain"
	"github.com/jhoicas/maletas-pro/internal/domain/entity"
	"github.com/jhoicas/maletas-pro/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SellerUseCase casos de uso del directorio de vendedoras.
type SellerUseCase struct {
	sellers repository.SellerRepository
	cases   repository.CaseRepository
}

// NewSellerUseCase construye el caso de uso.
func NewSellerUseCase(sellers repository.SellerRepository, cases repository.CaseRepository) *SellerUseCase {
	return &SellerUseCase{sellers: sellers, cases: cases}
}

// List devuelve el directorio ordenado por nombre ascendente.
func (uc *SellerUseCase) List() ([]*dto.SellerResponse, error) {
	list, err := uc.sellers.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SellerResponse, 0, len(list))
	for _, s := range list {
		out = append(out, sellerToResponse(s))
	}
	return out, nil
}

// Create registra una vendedora. Sin tasa indicada aplica la tasa por defecto.
func (uc *SellerUseCase) Create(in dto.SaveSellerRequest) (*dto.SellerResponse, error) {
	rate, err := resolveRate(in.CommissionRate)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	seller := &entity.Seller{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Phone:          in.Phone,
		CommissionRate: rate,
		CreatedAt:      time.Now(),
	}
	if err := uc.sellers.Create(seller); err != nil {
		return nil, err
	}
	return sellerToResponse(seller), nil
}

// Update reemplaza nombre, teléfono y tasa (reemplazo completo, no parcial).
func (uc *SellerUseCase) Update(id string, in dto.SaveSellerRequest) error {
	rate, err := resolveRate(in.CommissionRate)
	if err != nil {
		return err
	}
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	existing, err := uc.sellers.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	existing.Name = in.Name
	existing.Phone = in.Phone
	existing.CommissionRate = rate
	return uc.sellers.Update(existing)
}

// Delete elimina físicamente una vendedora. La guarda referencial se verifica
// antes de escribir: con ≥1 maleta vinculada el borrado se rechaza.
func (uc *SellerUseCase) Delete(id string) error {
	linked, err := uc.cases.CountBySeller(id)
	if err != nil {
		return err
	}
	if linked > 0 {
		return domain.ErrSellerHasCases
	}
	found, err := uc.sellers.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// resolveRate valida la fracción de comisión; nil aplica el default (0.3).
func resolveRate(rate *decimal.Decimal) (decimal.Decimal, error) {
	if rate == nil {
		return entity.DefaultCommissionRate, nil
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return *rate, nil
}

func sellerToResponse(s *entity.Seller) *dto.SellerResponse {
	return &dto.SellerResponse{
		ID:             s.ID,
		Name:           s.Name,
		Phone:          s.Phone,
		CommissionRate: s.CommissionRate,
		CreatedAt:      s.CreatedAt,
	}
}
