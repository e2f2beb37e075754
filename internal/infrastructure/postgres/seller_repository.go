package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/maletas-pro/internal/domain/entity"
	"github.com/jhoicas/maletas-pro/internal/domain/repository"
)

var _ repository.SellerRepository = (*SellerRepo)(nil)

// SellerRepo implementación de SellerRepository (usable con pool o tx).
type SellerRepo struct {
	q Querier
}

// NewSellerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSellerRepository(q Querier) *SellerRepo {
	return &SellerRepo{q: q}
}

// Create persiste una vendedora nueva.
func (r *SellerRepo) Create(seller *entity.Seller) error {
	query := `
		INSERT INTO sellers (id, name, phone, commission_rate, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		seller.ID, seller.Name, seller.Phone, seller.CommissionRate, seller.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

// GetByID obtiene una vendedora por ID. Devuelve nil si no existe.
func (r *SellerRepo) GetByID(id string) (*entity.Seller, error) {
	query := `
		SELECT id, name, phone, commission_rate, created_at
		FROM sellers WHERE id = $1`
	var s entity.Seller
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Phone, &s.CommissionRate, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return &s, nil
}

// List devuelve el directorio ordenado por nombre ascendente.
func (r *SellerRepo) List() ([]*entity.Seller, error) {
	query := `
		SELECT id, name, phone, commission_rate, created_at
		FROM sellers ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Seller
	for rows.Next() {
		var s entity.Seller
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.CommissionRate, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update reemplaza nombre, teléfono y tasa de comisión.
func (r *SellerRepo) Update(seller *entity.Seller) error {
	query := `
		UPDATE sellers SET name = $2, phone = $3, commission_rate = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		seller.ID, seller.Name, seller.Phone, seller.CommissionRate,
	)
	if err != nil {
		return fmt.Errorf("update seller: %w", err)
	}
	return nil
}

// Delete elimina físicamente. La guarda "tiene maletas" se verifica antes, en
// la capa de aplicación; aquí solo se ejecuta el borrado.
func (r *SellerRepo) Delete(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sellers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete seller: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteAll vacía la tabla (reset administrativo).
func (r *SellerRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM sellers`); err != nil {
		return fmt.Errorf("delete all sellers: %w", err)
	}
	return nil
}
