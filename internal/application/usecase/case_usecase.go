package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/maletas-pro/internal/application/dto"
	"github.com/jhoicas/maletas-pro/internal/domain"
	"github.com/jhoicas/maletas-pro/internal/domain/entity"
	"github.com/jhoicas/maletas-pro/internal/domain/repository"
	"github.com/jhoicas/maletas-pro/pkg/whatsapp"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CaseUseCase casos de uso del ciclo de vida de maletas.
//
// create y replace corren dentro de una transacción: la fila de la maleta y
// sus piezas persisten juntas o no persiste nada.
type CaseUseCase struct {
	tx      TxRunner
	cases   repository.CaseRepository
	items   repository.ItemRepository
	sellers repository.SellerRepository
}

// NewCaseUseCase construye el caso de uso.
func NewCaseUseCase(
	tx TxRunner,
	cases repository.CaseRepository,
	items repository.ItemRepository,
	sellers repository.SellerRepository,
) *CaseUseCase {
	return &CaseUseCase{tx: tx, cases: cases, items: items, sellers: sellers}
}

// List devuelve todas las maletas con el nombre de su vendedora.
func (uc *CaseUseCase) List() ([]*dto.CaseResponse, error) {
	rows, err := uc.cases.ListWithSeller()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CaseResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, caseToResponse(&r.Case, r.SellerName))
	}
	return out, nil
}

// Items devuelve las piezas de una maleta existente.
func (uc *CaseUseCase) Items(caseID string) ([]*dto.ItemResponse, error) {
	c, err := uc.cases.GetByID(caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.items.ListByCase(caseID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, &dto.ItemResponse{
			ID:          it.ID,
			CaseID:      it.CaseID,
			Description: it.Description,
			Price:       it.Price,
		})
	}
	return out, nil
}

// Create inserta la maleta con estado InField, fecha de entrega "ahora" y
// devolución a +60 días, junto con todas sus piezas, en una sola transacción.
// Los montos vienen precomputados por el caller y se guardan tal cual.
func (uc *CaseUseCase) Create(ctx context.Context, in dto.SaveCaseRequest) (string, error) {
	if in.SellerID == "" {
		return "", domain.ErrInvalidInput
	}
	warnTotalsMismatch("create", in)

	now := time.Now()
	sellerID := in.SellerID
	c := &entity.Case{
		ID:              uuid.New().String(),
		SellerID:        &sellerID,
		Status:          entity.StatusInField,
		Photo:           in.Photo,
		TotalGross:      in.TotalGross,
		CommissionValue: in.CommissionValue,
		EstimatedProfit: in.EstimatedProfit,
		DeliveryDate:    now,
		ReturnDate:      now.AddDate(0, 0, entity.ReturnOffsetDays),
		CreatedAt:       now,
	}

	err := uc.tx.Run(ctx, func(
		caseRepo repository.CaseRepository,
		itemRepo repository.ItemRepository,
		_ repository.SellerRepository,
	) error {
		if err := caseRepo.Create(c); err != nil {
			return err
		}
		return itemRepo.CreateBatch(buildItems(c.ID, in.Items))
	})
	if err != nil {
		return "", fmt.Errorf("crear maleta: %w", err)
	}
	return c.ID, nil
}

// Replace sobrescribe vendedora, foto y montos, borra todas las piezas
// existentes y re-inserta la lista enviada. Es un reemplazo completo, no un
// merge: toda pieza no reenviada se pierde.
func (uc *CaseUseCase) Replace(ctx context.Context, id string, in dto.SaveCaseRequest) error {
	if in.SellerID == "" {
		return domain.ErrInvalidInput
	}
	existing, err := uc.cases.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	warnTotalsMismatch("replace", in)

	sellerID := in.SellerID
	existing.SellerID = &sellerID
	existing.Photo = in.Photo
	existing.TotalGross = in.TotalGross
	existing.CommissionValue = in.CommissionValue
	existing.EstimatedProfit = in.EstimatedProfit

	err = uc.tx.Run(ctx, func(
		caseRepo repository.CaseRepository,
		itemRepo repository.ItemRepository,
		_ repository.SellerRepository,
	) error {
		if err := caseRepo.Update(existing); err != nil {
			return err
		}
		if err := itemRepo.DeleteByCase(id); err != nil {
			return err
		}
		return itemRepo.CreateBatch(buildItems(id, in.Items))
	})
	if err != nil {
		return fmt.Errorf("reemplazar maleta: %w", err)
	}
	return nil
}

// ChangeStatus actualiza solo el estado. El valor debe ser uno de los
// conocidos; la transición en sí no se restringe (Finalized → InField vale).
func (uc *CaseUseCase) ChangeStatus(id, status string) error {
	st := entity.CaseStatus(status)
	if !st.Valid() {
		return domain.ErrInvalidInput
	}
	found, err := uc.cases.UpdateStatus(id, st)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una maleta; sus piezas caen por el cascade del esquema.
func (uc *CaseUseCase) Delete(id string) error {
	found, err := uc.cases.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByStatus vacía un bucket completo ("InField" o "Finalized") y
// devuelve cuántas maletas se eliminaron.
func (uc *CaseUseCase) DeleteByStatus(status string) (int64, error) {
	st := entity.CaseStatus(status)
	if !st.Valid() {
		return 0, domain.ErrInvalidInput
	}
	return uc.cases.DeleteByStatus(st)
}

// Reset vacía piezas, maletas y vendedoras, en ese orden de dependencia,
// dentro de una sola transacción. Es el wipe administrativo, no una
// operación normal del ciclo de vida.
func (uc *CaseUseCase) Reset(ctx context.Context) error {
	err := uc.tx.Run(ctx, func(
		caseRepo repository.CaseRepository,
		itemRepo repository.ItemRepository,
		sellerRepo repository.SellerRepository,
	) error {
		if err := itemRepo.DeleteAll(); err != nil {
			return err
		}
		if err := caseRepo.DeleteAll(); err != nil {
			return err
		}
		return sellerRepo.DeleteAll()
	})
	if err != nil {
		return fmt.Errorf("reset del sistema: %w", err)
	}
	return nil
}

// WhatsappLink compone el deep link de cobro hacia la vendedora de la maleta,
// con el recordatorio de la fecha de devolución. El teléfono se normaliza a
// solo dígitos recién aquí, al componer el mensaje.
func (uc *CaseUseCase) WhatsappLink(caseID string) (*dto.WhatsappLinkResponse, error) {
	c, err := uc.cases.GetByID(caseID)
	if err != nil {
		return nil, err
	}
	if c == nil || c.SellerID == nil {
		return nil, domain.ErrNotFound
	}
	seller, err := uc.sellers.GetByID(*c.SellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrNotFound
	}
	msg := fmt.Sprintf(
		"Hola %s! Te recuerdo que la maleta entregada el %s tiene devolución pactada para el %s. Total bruto: $%s. ¡Gracias!",
		seller.Name,
		c.DeliveryDate.Format("02/01/2006"),
		c.ReturnDate.Format("02/01/2006"),
		c.TotalGross.StringFixed(2),
	)
	link, err := whatsapp.ComposeLink(seller.Phone, msg)
	if err != nil {
		return nil, fmt.Errorf("componer link de WhatsApp: %w", err)
	}
	return &dto.WhatsappLinkResponse{Link: link}, nil
}

// buildItems materializa las piezas del request con ids nuevos.
func buildItems(caseID string, in []dto.CaseItemRequest) []*entity.Item {
	items := make([]*entity.Item, 0, len(in))
	for _, it := range in {
		items = append(items, &entity.Item{
			ID:          uuid.New().String(),
			CaseID:      caseID,
			Description: it.Description,
			Price:       it.Price,
		})
	}
	return items
}

// warnTotalsMismatch deja rastro cuando el total enviado no coincide con la
// suma de precios (nil cuenta como 0). El store confía en los montos del
// caller; el mismatch se observa pero no se rechaza.
func warnTotalsMismatch(op string, in dto.SaveCaseRequest) {
	sum := decimal.Zero
	for _, it := range in.Items {
		if it.Price != nil {
			sum = sum.Add(*it.Price)
		}
	}
	if !sum.Equal(in.TotalGross) {
		log.Warn().
			Str("op", op).
			Str("total_gross", in.TotalGross.String()).
			Str("items_sum", sum.String()).
			Msg("total_gross no coincide con la suma de precios de las piezas")
	}
}

func caseToResponse(c *entity.Case, sellerName string) *dto.CaseResponse {
	return &dto.CaseResponse{
		ID:              c.ID,
		SellerID:        c.SellerID,
		SellerName:      sellerName,
		Status:          string(c.Status),
		Photo:           c.Photo,
		TotalGross:      c.TotalGross,
		CommissionValue: c.CommissionValue,
		EstimatedProfit: c.EstimatedProfit,
		DeliveryDate:    c.DeliveryDate,
		ReturnDate:      c.ReturnDate,
		CreatedAt:       c.CreatedAt,
	}
}
