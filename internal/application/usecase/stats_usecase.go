package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/maletas-pro/internal/application/dto"
	"github.com/jhoicas/maletas-pro/internal/domain/repository"
)

const statsTopSellers = 5 // tamaño del ranking en el dashboard

// StatsUseCase genera el resumen del dashboard.
//
// Fuente de datos: StatsRepository (consultas read-only). Las tres consultas
// se lanzan en paralelo; no comparten estado mutable entre sí.
type StatsUseCase struct {
	stats repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(stats repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{stats: stats}
}

// GetSummary arma el payload de GET /api/stats:
//  1. CountCases          → total de maletas
//  2. GetInFieldMetrics   → conteo y sumas financieras de las InField
//  3. GetTopSellers(5)    → ranking de vendedoras por valor bruto en campo
func (uc *StatsUseCase) GetSummary(ctx context.Context) (*dto.StatsResponse, error) {
	type totalResult struct {
		total int
		err   error
	}
	type metricsResult struct {
		metrics repository.InFieldMetrics
		err     error
	}
	type rankingResult struct {
		sellers []repository.TopSellerResult
		err     error
	}

	totalCh := make(chan totalResult, 1)
	metricsCh := make(chan metricsResult, 1)
	rankingCh := make(chan rankingResult, 1)

	go func() {
		total, err := uc.stats.CountCases(ctx)
		totalCh <- totalResult{total, err}
	}()
	go func() {
		m, err := uc.stats.GetInFieldMetrics(ctx)
		metricsCh <- metricsResult{m, err}
	}()
	go func() {
		sellers, err := uc.stats.GetTopSellers(ctx, statsTopSellers)
		rankingCh <- rankingResult{sellers, err}
	}()

	total := <-totalCh
	metrics := <-metricsCh
	ranking := <-rankingCh

	if total.err != nil {
		return nil, fmt.Errorf("stats: total de maletas: %w", total.err)
	}
	if metrics.err != nil {
		return nil, fmt.Errorf("stats: métricas en campo: %w", metrics.err)
	}
	if ranking.err != nil {
		return nil, fmt.Errorf("stats: ranking de vendedoras: %w", ranking.err)
	}

	top := make([]dto.TopSellerDTO, 0, len(ranking.sellers))
	for _, s := range ranking.sellers {
		top = append(top, dto.TopSellerDTO{
			SellerID:   s.SellerID,
			SellerName: s.SellerName,
			TotalGross: s.TotalGross,
			CaseCount:  s.CaseCount,
		})
	}

	return &dto.StatsResponse{
		TotalCases: total.total,
		InField: dto.InFieldStatsDTO{
			Count:           metrics.metrics.Count,
			TotalGross:      metrics.metrics.TotalGross,
			CommissionValue: metrics.metrics.CommissionValue,
			EstimatedProfit: metrics.metrics.EstimatedProfit,
		},
		TopSellers: top,
	}, nil
}
