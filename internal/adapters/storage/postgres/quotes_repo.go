package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"friends-directory/internal/domain/quotes"
)

type QuotesRepo struct {
	db *sql.DB
}

func NewQuotesRepo(db *sql.DB) *QuotesRepo {
	return &QuotesRepo{db: db}
}

const quoteColumns = `id, friend_id, text, author, seeded, created_at, deleted_at`

func (r *QuotesRepo) Create(ctx context.Context, q quotes.Quote) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quotes (`+quoteColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		q.ID,
		q.FriendID,
		q.Text,
		q.Author,
		q.Seeded,
		q.CreatedAt,
		toNullTime(q.DeletedAt),
	)
	return err
}

func (r *QuotesRepo) GetByID(ctx context.Context, id string) (quotes.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return quotes.Quote{}, quotes.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+quoteColumns+`
		FROM quotes
		WHERE id = $1
	`, id)

	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return quotes.Quote{}, quotes.ErrNotFound
	}
	return q, err
}

func (r *QuotesRepo) ListByFriend(ctx context.Context, friendID string, includeDeleted bool) ([]quotes.Quote, error) {
	friendID = strings.TrimSpace(friendID)
	if friendID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+quoteColumns+`
		FROM quotes
		WHERE friend_id = $1
		  AND ($2 OR deleted_at IS NULL)
		ORDER BY created_at ASC, id ASC
	`, friendID, includeDeleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]quotes.Quote, 0)
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}

	return out, rows.Err()
}

func (r *QuotesRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE quotes
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`, id, at)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return quotes.ErrNotFound
	}
	return nil
}

func scanQuote(s rowScanner) (quotes.Quote, error) {
	var q quotes.Quote
	var deleted sql.NullTime
	if err := s.Scan(
		&q.ID,
		&q.FriendID,
		&q.Text,
		&q.Author,
		&q.Seeded,
		&q.CreatedAt,
		&deleted,
	); err != nil {
		return quotes.Quote{}, err
	}
	q.DeletedAt = fromNullTime(deleted)
	return q, nil
}
