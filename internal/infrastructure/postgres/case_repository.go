package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/maletas-pro/internal/domain/entity"
	"github.com/jhoicas/maletas-pro/internal/domain/repository"
)

var _ repository.CaseRepository = (*CaseRepo)(nil)

// CaseRepo implementación de CaseRepository (usable con pool o tx).
type CaseRepo struct {
	q Querier
}

// NewCaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCaseRepository(q Querier) *CaseRepo {
	return &CaseRepo{q: q}
}

// Create persiste la fila de la maleta. Las piezas van aparte (ItemRepo),
// dentro de la misma transacción cuando el caller usa el TxRunner.
func (r *CaseRepo) Create(c *entity.Case) error {
	query := `
		INSERT INTO cases (id, seller_id, status, photo, total_gross, commission_value,
		                   estimated_profit, delivery_date, return_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.SellerID, string(c.Status), c.Photo,
		c.TotalGross, c.CommissionValue, c.EstimatedProfit,
		c.DeliveryDate, c.ReturnDate, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}

// GetByID obtiene una maleta por ID. Devuelve nil si no existe.
func (r *CaseRepo) GetByID(id string) (*entity.Case, error) {
	query := `
		SELECT id, seller_id, status, photo, total_gross, commission_value,
		       estimated_profit, delivery_date, return_date, created_at
		FROM cases WHERE id = $1`
	var c entity.Case
	var status string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.SellerID, &status, &c.Photo,
		&c.TotalGross, &c.CommissionValue, &c.EstimatedProfit,
		&c.DeliveryDate, &c.ReturnDate, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get case: %w", err)
	}
	c.Status = entity.CaseStatus(status)
	return &c, nil
}

// ListWithSeller lista todas las maletas unidas al nombre de su vendedora,
// más recientes primero. LEFT JOIN: una maleta sin vendedora sale con nombre vacío.
func (r *CaseRepo) ListWithSeller() ([]*repository.CaseWithSeller, error) {
	query := `
		SELECT c.id, c.seller_id, c.status, c.photo, c.total_gross, c.commission_value,
		       c.estimated_profit, c.delivery_date, c.return_date, c.created_at,
		       COALESCE(s.name, '') AS seller_name
		FROM cases c
		LEFT JOIN sellers s ON s.id = c.seller_id
		ORDER BY c.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()
	var list []*repository.CaseWithSeller
	for rows.Next() {
		var row repository.CaseWithSeller
		var status string
		if err := rows.Scan(
			&row.Case.ID, &row.Case.SellerID, &status, &row.Case.Photo,
			&row.Case.TotalGross, &row.Case.CommissionValue, &row.Case.EstimatedProfit,
			&row.Case.DeliveryDate, &row.Case.ReturnDate, &row.Case.CreatedAt,
			&row.SellerName,
		); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		row.Case.Status = entity.CaseStatus(status)
		list = append(list, &row)
	}
	return list, rows.Err()
}

// Update sobrescribe vendedora, foto y montos. Estado y fechas no se tocan aquí.
func (r *CaseRepo) Update(c *entity.Case) error {
	query := `
		UPDATE cases
		SET seller_id = $2, photo = $3, total_gross = $4, commission_value = $5, estimated_profit = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.SellerID, c.Photo, c.TotalGross, c.CommissionValue, c.EstimatedProfit,
	)
	if err != nil {
		return fmt.Errorf("update case: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado. Devuelve false si el id no existe.
func (r *CaseRepo) UpdateStatus(id string, status entity.CaseStatus) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE cases SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return false, fmt.Errorf("update case status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina la maleta; las piezas caen por ON DELETE CASCADE.
func (r *CaseRepo) Delete(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM cases WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete case: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByStatus vacía un bucket completo y devuelve las filas afectadas.
func (r *CaseRepo) DeleteByStatus(status entity.CaseStatus) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM cases WHERE status = $1`, string(status))
	if err != nil {
		return 0, fmt.Errorf("delete cases by status: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountBySeller cuenta las maletas vinculadas a una vendedora.
func (r *CaseRepo) CountBySeller(sellerID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM cases WHERE seller_id = $1`, sellerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count cases by seller: %w", err)
	}
	return count, nil
}

// DeleteAll vacía la tabla (reset administrativo).
func (r *CaseRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM cases`); err != nil {
		return fmt.Errorf("delete all cases: %w", err)
	}
	return nil
}
