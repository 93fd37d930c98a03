package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// inquiryRepo implements InquiryRepo on the inquiries table.
type inquiryRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *inquiryRepo) AppendInquiry(ctx context.Context, data InquiryData) (string, error) {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	query, args := builder.Insert(InquiriesTable.Name).
		Columns("id", "sequence", "timestamp", "name", "email", "phone", "message").
		Values(id, seq, time.Now().UTC(), data.Name, data.Email, data.Phone, data.Message).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return "", fmt.Errorf("append inquiry: %w", err)
	}
	return id, nil
}

func (r *inquiryRepo) CountInquiries(ctx context.Context) (int, error) {
	query, args := builder.Select(entsql.Count("*")).
		From(entsql.Table(InquiriesTable.Name)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("count inquiries: %w", err)
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("count inquiries: %w", err)
		}
	}
	return n, rows.Err()
}
