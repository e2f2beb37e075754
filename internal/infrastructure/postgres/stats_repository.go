package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/maletas-pro/internal/domain/entity"
	"github.com/jhoicas/maletas-pro/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el dashboard.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountCases cuenta todas las maletas sin importar el estado.
func (r *StatsRepo) CountCases(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cases`).Scan(&count); err != nil {
		return 0, fmt.Errorf("stats.CountCases: %w", err)
	}
	return count, nil
}

// GetInFieldMetrics devuelve conteo y sumas financieras de las maletas InField.
// COALESCE para devolver cero cuando no hay filas.
func (r *StatsRepo) GetInFieldMetrics(ctx context.Context) (repository.InFieldMetrics, error) {
	const query = `
	SELECT
	    COUNT(*)                            AS in_field_count,
	    COALESCE(SUM(total_gross),      0)  AS total_gross,
	    COALESCE(SUM(commission_value), 0)  AS commission_value,
	    COALESCE(SUM(estimated_profit), 0)  AS estimated_profit
	FROM cases
	WHERE status = $1`

	var m repository.InFieldMetrics
	err := r.pool.QueryRow(ctx, query, string(entity.StatusInField)).Scan(
		&m.Count, &m.TotalGross, &m.CommissionValue, &m.EstimatedProfit,
	)
	if err != nil {
		return repository.InFieldMetrics{}, fmt.Errorf("stats.GetInFieldMetrics: %w", err)
	}
	return m, nil
}

// GetTopSellers devuelve las `limit` vendedoras con mayor valor bruto sumado
// entre sus maletas InField. El orden secundario por id hace el ranking
// determinista ante empates.
func (r *StatsRepo) GetTopSellers(ctx context.Context, limit int) ([]repository.TopSellerResult, error) {
	const query = `
	SELECT
	    s.id                                AS seller_id,
	    s.name                              AS seller_name,
	    COALESCE(SUM(c.total_gross), 0)     AS total_gross,
	    COUNT(c.id)                         AS case_count
	FROM cases c
	JOIN sellers s ON s.id = c.seller_id
	WHERE c.status = $1
	GROUP BY s.id, s.name
	ORDER BY total_gross DESC, s.id ASC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, string(entity.StatusInField), limit)
	if err != nil {
		return nil, fmt.Errorf("stats.GetTopSellers: %w", err)
	}
	defer rows.Close()

	var results []repository.TopSellerResult
	for rows.Next() {
		var row repository.TopSellerResult
		if err := rows.Scan(&row.SellerID, &row.SellerName, &row.TotalGross, &row.CaseCount); err != nil {
			return nil, fmt.Errorf("stats.GetTopSellers scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stats.GetTopSellers rows: %w", err)
	}
	if results == nil {
		results = []repository.TopSellerResult{}
	}
	return results, nil
}
