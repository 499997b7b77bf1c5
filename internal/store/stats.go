package store

import (
	"context"
	"fmt"
	"math"

	"github.com/jmoiron/sqlx"

	"github.com/todoflow-labs/todo-service/internal/model"
)

// StatsStore computes the aggregate view over the full todo set. It holds no
// state of its own.
type StatsStore struct {
	db *sqlx.DB
}

const statsQuery = `
SELECT
	COUNT(*)                                                    AS total,
	COUNT(*) FILTER (WHERE completed)                           AS completed,
	COUNT(*) FILTER (WHERE NOT completed)                       AS active,
	COUNT(*) FILTER (WHERE NOT completed AND due_date < now())  AS overdue,
	COUNT(*) FILTER (WHERE priority = 'low')                    AS low,
	COUNT(*) FILTER (WHERE priority = 'medium')                 AS medium,
	COUNT(*) FILTER (WHERE priority = 'high')                   AS high
FROM todos`

// TodoStats aggregates counts in a single query; an overdue todo is one that
// is not completed and whose due date is strictly in the past.
func (s *StatsStore) TodoStats(ctx context.Context) (*model.TodoStats, error) {
	var row struct {
		Total     int `db:"total"`
		Completed int `db:"completed"`
		Active    int `db:"active"`
		Overdue   int `db:"overdue"`
		Low       int `db:"low"`
		Medium    int `db:"medium"`
		High      int `db:"high"`
	}
	if err := s.db.GetContext(ctx, &row, statsQuery); err != nil {
		return nil, fmt.Errorf("todo stats: %w", err)
	}

	rate := 0
	if row.Total > 0 {
		rate = int(math.Round(float64(row.Completed) / float64(row.Total) * 100))
	}
	return &model.TodoStats{
		Total:     row.Total,
		Completed: row.Completed,
		Active:    row.Active,
		Overdue:   row.Overdue,
		ByPriority: model.PriorityCounts{
			Low:    row.Low,
			Medium: row.Medium,
			High:   row.High,
		},
		CompletionRate: rate,
	}, nil
}
