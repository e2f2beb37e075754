package repository

import (
	"github.com/jhoicas/maletas-pro/internal/domain/entity"
)

// CaseWithSeller fila del listado de maletas unida al nombre de la vendedora.
type CaseWithSeller struct {
	Case       entity.Case
	SellerName string // vacío si la maleta no tiene vendedora asignada
}

// CaseRepository define el puerto de persistencia para Case (maleta).
type CaseRepository interface {
	Create(c *entity.Case) error
	GetByID(id string) (*entity.Case, error)
	// ListWithSeller devuelve todas las maletas con el nombre de su vendedora,
	// más recientes primero.
	ListWithSeller() ([]*CaseWithSeller, error)
	// Update sobrescribe vendedora, foto y montos de la maleta.
	Update(c *entity.Case) error
	// UpdateStatus cambia solo el estado. Devuelve false si el id no existe.
	UpdateStatus(id string, status entity.CaseStatus) (bool, error)
	// Delete elimina la maleta; las piezas caen por el cascade del esquema.
	// Devuelve false si el id no existe.
	Delete(id string) (bool, error)
	// DeleteByStatus elimina todas las maletas con ese estado y devuelve
	// cuántas filas fueron afectadas.
	DeleteByStatus(status entity.CaseStatus) (int64, error)
	// CountBySeller cuenta las maletas vinculadas a una vendedora
	// (guarda referencial para el borrado de vendedoras).
	CountBySeller(sellerID string) (int, error)
	DeleteAll() error
}

// ItemRepository define el puerto de persistencia para Item.
type ItemRepository interface {
	CreateBatch(items []*entity.Item) error
	ListByCase(caseID string) ([]*entity.Item, error)
	DeleteByCase(caseID string) error
	DeleteAll() error
}
