package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ddl esquema completo. El único cascade es items → cases: borrar una maleta
// borra sus piezas; borrar una vendedora NO cae en cascada sobre las maletas
// (ese borrado se bloquea antes, en la capa de aplicación).
const ddl = `
CREATE TABLE IF NOT EXISTS sellers (
    id              TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    phone           TEXT NOT NULL DEFAULT '',
    commission_rate NUMERIC(6,4) NOT NULL DEFAULT 0.3,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS cases (
    id               TEXT PRIMARY KEY,
    seller_id        TEXT REFERENCES sellers(id),
    status           TEXT NOT NULL DEFAULT 'Available',
    photo            TEXT NOT NULL DEFAULT '',
    total_gross      NUMERIC(14,2) NOT NULL DEFAULT 0,
    commission_value NUMERIC(14,2) NOT NULL DEFAULT 0,
    estimated_profit NUMERIC(14,2) NOT NULL DEFAULT 0,
    delivery_date    TIMESTAMPTZ NOT NULL DEFAULT now(),
    return_date      TIMESTAMPTZ NOT NULL DEFAULT now(),
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS items (
    id          TEXT PRIMARY KEY,
    case_id     TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
    description TEXT NOT NULL,
    price       NUMERIC(14,2)
);

CREATE INDEX IF NOT EXISTS idx_cases_seller ON cases(seller_id);
CREATE INDEX IF NOT EXISTS idx_cases_status ON cases(status);
CREATE INDEX IF NOT EXISTS idx_items_case   ON items(case_id);
`

// Migrate crea el esquema si no existe. Se invoca una sola vez, explícitamente,
// al arranque del proceso; el seeding va aparte (ver seed.go) para que los
// tests y producción puedan omitirlo.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("migrar esquema: %w", err)
	}
	return nil
}
