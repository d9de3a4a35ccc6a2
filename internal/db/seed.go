package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns, flights and raw daily metrics so a local
// instance has data to pace and export. Rows are ingested through plain
// inserts (no derived fields); run a real ingestion call to exercise the
// pipeline end to end.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	start := time.Now().UTC().AddDate(0, 0, -10)
	end := time.Now().UTC().AddDate(0, 1, 0)

	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("Campaign %d", i)
		totalBudget := 3000.00 * float64(i)
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, account_id, name, currency, total_budget, start_at, end_at, pacing_strategy, objective, status, created_at, updated_at)
VALUES ($1,$2,$3,'USD',$4,$5,$6,'even','conversions','active',now(),now()) ON CONFLICT DO NOTHING`,
			i, 100+i, name, totalBudget, start, end)
		if err != nil {
			return err
		}

		// one flight covering the second half of the campaign
		flightID := i * 10
		_, err = db.Exec(ctx, `INSERT INTO flights
    (id, campaign_id, name, total_budget, start_at, end_at, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,now(),now()) ON CONFLICT DO NOTHING`,
			flightID, i, fmt.Sprintf("Flight %d-1", i), totalBudget/2, start.AddDate(0, 0, 15), end)
		if err != nil {
			return err
		}

		for d := 0; d < 7; d++ {
			date := start.AddDate(0, 0, d)
			impressions := int64(r.Intn(5000) + 500)
			clicks := impressions / int64(r.Intn(20)+5)
			conversions := clicks / int64(r.Intn(10)+2)
			spend := float64(r.Intn(12000)) / 100
			revenue := spend * (0.8 + r.Float64())
			_, err = db.Exec(ctx, `INSERT INTO daily_metrics
    (campaign_id, metric_date, impressions, clicks, conversions, spend, revenue, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now(),now()) ON CONFLICT DO NOTHING`,
				i, date, impressions, clicks, conversions, spend, revenue)
			if err != nil {
				return err
			}
		}
	}

	// explicit ids bypass the serials; bump them so later inserts don't
	// collide with the seeded rows
	for _, table := range []string{"campaigns", "flights"} {
		_, err := db.Exec(ctx, fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))`, table, table))
		if err != nil {
			return err
		}
	}
	return nil
}
