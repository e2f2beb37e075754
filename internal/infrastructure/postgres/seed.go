package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedIfEmpty inserta vendedoras de demostración solo si el directorio está
// vacío. Separado de Migrate y activado por configuración (DB_SEED) para que
// nadie lo arrastre por accidente.
func SeedIfEmpty(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM sellers`).Scan(&count); err != nil {
		return fmt.Errorf("seed: contar vendedoras: %w", err)
	}
	if count > 0 {
		return nil
	}

	demo := []struct {
		name, phone string
		rate        float64
	}{
		{"Ana Lucía Pereira", "+55 11 98888-1001", 0.3},
		{"Carla Mendes", "+55 11 98888-1002", 0.25},
		{"Juliana Rocha", "+55 21 97777-2003", 0.3},
	}
	for _, d := range demo {
		_, err := pool.Exec(ctx,
			`INSERT INTO sellers (id, name, phone, commission_rate, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			uuid.New().String(), d.name, d.phone, d.rate, time.Now(),
		)
		if err != nil {
			return fmt.Errorf("seed: insertar vendedora %q: %w", d.name, err)
		}
	}
	return nil
}
