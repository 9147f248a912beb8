package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"friends-directory/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `id, friend_id, name, kind, mood, seeded, created_at, deleted_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		p.ID,
		p.FriendID,
		p.Name,
		p.Kind,
		p.Mood,
		p.Seeded,
		p.CreatedAt,
		toNullTime(p.DeletedAt),
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) ListByFriend(ctx context.Context, friendID string, includeDeleted bool) ([]pets.Pet, error) {
	friendID = strings.TrimSpace(friendID)
	if friendID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE friend_id = $1
		  AND ($2 OR deleted_at IS NULL)
		ORDER BY created_at ASC, id ASC
	`, friendID, includeDeleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`, id, at)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(s rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var deleted sql.NullTime
	if err := s.Scan(
		&p.ID,
		&p.FriendID,
		&p.Name,
		&p.Kind,
		&p.Mood,
		&p.Seeded,
		&p.CreatedAt,
		&deleted,
	); err != nil {
		return pets.Pet{}, err
	}
	p.DeletedAt = fromNullTime(deleted)
	return p, nil
}
