package store

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// historyRepo implements HistoryRepo on the diagnosis_runs table.
type historyRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *historyRepo) AppendRun(ctx context.Context, data RunData) error {
	answers, err := json.Marshal(data.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	completedAt := data.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now()
	}

	query, args := builder.Insert(DiagnosisRunsTable.Name).
		Columns("id", "sequence", "timestamp", "rule", "title", "max_amount", "answers").
		Values(data.ID, seq, completedAt.UTC(), data.Rule, data.Title, data.MaxAmount, answers).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("append run: %w", err)
	}
	return nil
}

func (r *historyRepo) RecentRuns(ctx context.Context, opts QueryOpts) ([]RunRecord, error) {
	sel := builder.Select("id", "sequence", "timestamp", "rule", "title", "max_amount", "answers").
		From(entsql.Table(DiagnosisRunsTable.Name)).
		OrderBy(entsql.Desc("sequence"))
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UTC()))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var (
			rec     RunRecord
			answers []byte
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &rec.CompletedAt, &rec.Rule, &rec.Title, &rec.MaxAmount, &answers); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if err := json.Unmarshal(answers, &rec.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *historyRepo) RuleCounts(ctx context.Context) (map[string]int, int, error) {
	query, args := builder.Select("rule", entsql.Count("*")).
		From(entsql.Table(DiagnosisRunsTable.Name)).
		GroupBy("rule").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, 0, fmt.Errorf("query rule counts: %w", err)
	}
	defer rows.Close()

	byRule := make(map[string]int)
	total := 0
	for rows.Next() {
		var (
			rule string
			n    int
		)
		if err := rows.Scan(&rule, &n); err != nil {
			return nil, 0, fmt.Errorf("scan rule count: %w", err)
		}
		byRule[rule] = n
		total += n
	}
	return byRule, total, rows.Err()
}

func (r *historyRepo) ClearRuns(ctx context.Context) (int64, error) {
	query, args := builder.Delete(DiagnosisRunsTable.Name).Query()

	var res stdsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("clear runs: %w", err)
	}
	return res.RowsAffected()
}
