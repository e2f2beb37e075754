package dto

import "github.com/shopspring/decimal"

// InFieldStatsDTO agregados de las maletas actualmente en campo.
type InFieldStatsDTO struct {
	Count           int             `json:"count"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	CommissionValue decimal.Decimal `json:"commission_value"`
	EstimatedProfit decimal.Decimal `json:"estimated_profit"`
}

// TopSellerDTO fila del ranking de vendedoras.
type TopSellerDTO struct {
	SellerID   string          `json:"seller_id"`
	SellerName string          `json:"seller_name"`
	TotalGross decimal.Decimal `json:"total_gross"`
	CaseCount  int             `json:"case_count"`
}

// StatsResponse payload de GET /api/stats.
type StatsResponse struct {
	TotalCases int             `json:"total_cases"`
	InField    InFieldStatsDTO `json:"in_field"`
	TopSellers []TopSellerDTO  `json:"top_sellers"`
}
