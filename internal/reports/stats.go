package reports

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Stats aggregates report counts for the admin dashboard.
type Stats struct {
	Total                int             `json:"total"`
	ByCategory           map[string]int  `json:"by_category"`
	ByRiskLevel          map[string]int  `json:"by_risk_level"`
	ByPlatform           map[string]int  `json:"by_platform"`
	SeverityDistribution SeverityBuckets `json:"severity_distribution"`
}

// SeverityBuckets counts reports by severity band.
type SeverityBuckets struct {
	High   int `json:"high"`   // 80-100
	Medium int `json:"medium"` // 50-79
	Low    int `json:"low"`    // 0-49
}

// Stats computes aggregate report statistics. The independent aggregations
// run concurrently.
func (r *repo) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := r.db.QueryRowContext(gctx, "SELECT COUNT(*) FROM reports").Scan(&stats.Total)
		if err != nil {
			return fmt.Errorf("count reports: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		m, err := r.groupCount(gctx, "category")
		if err != nil {
			return err
		}
		stats.ByCategory = m
		return nil
	})

	g.Go(func() error {
		m, err := r.groupCount(gctx, "risk_level")
		if err != nil {
			return err
		}
		stats.ByRiskLevel = m
		return nil
	})

	g.Go(func() error {
		m, err := r.groupCount(gctx, "platform_id")
		if err != nil {
			return err
		}
		stats.ByPlatform = m
		return nil
	})

	g.Go(func() error {
		q := `
			SELECT
				COUNT(*) FILTER (WHERE severity >= 80),
				COUNT(*) FILTER (WHERE severity >= 50 AND severity < 80),
				COUNT(*) FILTER (WHERE severity < 50)
			FROM reports`

		err := r.db.QueryRowContext(gctx, q).Scan(
			&stats.SeverityDistribution.High,
			&stats.SeverityDistribution.Medium,
			&stats.SeverityDistribution.Low,
		)
		if err != nil {
			return fmt.Errorf("severity distribution: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *repo) groupCount(ctx context.Context, column string) (map[string]int, error) {
	q := fmt.Sprintf("SELECT %s, COUNT(*) FROM reports GROUP BY %s", column, column)

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("group by %s: %w", column, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("scan %s count: %w", column, err)
		}
		counts[key] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s counts: %w", column, err)
	}

	return counts, nil
}
