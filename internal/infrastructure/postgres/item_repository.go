package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/maletas-pro/internal/domain/entity"
	"github.com/jhoicas/maletas-pro/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// CreateBatch inserta todas las piezas de una maleta. Con lista vacía no hace nada.
func (r *ItemRepo) CreateBatch(items []*entity.Item) error {
	query := `
		INSERT INTO items (id, case_id, description, price)
		VALUES ($1, $2, $3, $4)`
	for _, it := range items {
		_, err := r.q.Exec(context.Background(), query,
			it.ID, it.CaseID, it.Description, it.Price,
		)
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
	}
	return nil
}

// ListByCase devuelve las piezas de una maleta.
func (r *ItemRepo) ListByCase(caseID string) ([]*entity.Item, error) {
	query := `
		SELECT id, case_id, description, price
		FROM items WHERE case_id = $1`
	rows, err := r.q.Query(context.Background(), query, caseID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.CaseID, &it.Description, &it.Price); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeleteByCase borra todas las piezas de una maleta (paso previo del replace).
func (r *ItemRepo) DeleteByCase(caseID string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE case_id = $1`, caseID); err != nil {
		return fmt.Errorf("delete items by case: %w", err)
	}
	return nil
}

// DeleteAll vacía la tabla (reset administrativo).
func (r *ItemRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM items`); err != nil {
		return fmt.Errorf("delete all items: %w", err)
	}
	return nil
}
