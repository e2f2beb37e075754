package repository

import "github.com/jhoicas/maletas-pro/internal/domain/entity"

// SellerRepository define el puerto de persistencia para Seller.
type SellerRepository interface {
	Create(seller *entity.Seller) error
	GetByID(id string) (*entity.Seller, error)
	// List devuelve todas las vendedoras ordenadas por nombre ascendente.
	List() ([]*entity.Seller, error)
	// Update reemplaza nombre, teléfono y tasa de comisión.
	Update(seller *entity.Seller) error
	// Delete elimina físicamente (no hay soft-delete). Devuelve false si el id no existe.
	Delete(id string) (bool, error)
	// DeleteAll vacía la tabla; solo para el reset administrativo.
	DeleteAll() error
}
