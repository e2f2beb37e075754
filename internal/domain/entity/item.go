package entity

import "github.com/shopspring/decimal"

// Item pieza dentro de una maleta. Price en nil significa
// "identificada pero sin precio asignado".
type Item struct {
	ID          string
	CaseID      string
	Description string
	Price       *decimal.Decimal
}
