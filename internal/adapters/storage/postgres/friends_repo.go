package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"friends-directory/internal/domain/friends"
)

type FriendsRepo struct {
	db *sql.DB
}

func NewFriendsRepo(db *sql.DB) *FriendsRepo {
	return &FriendsRepo{db: db}
}

const friendColumns = `id, first_name, last_name, email, birthday, address_id, seeded, created_at, updated_at`

func (r *FriendsRepo) Create(ctx context.Context, f friends.Friend) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO friends (`+friendColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		f.ID,
		f.FirstName,
		f.LastName,
		f.Email,
		toNullTime(f.Birthday),
		toNullString(f.AddressID),
		f.Seeded,
		f.CreatedAt,
		f.UpdatedAt,
	)
	return err
}

func (r *FriendsRepo) Update(ctx context.Context, f friends.Friend) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE friends
		SET
			first_name = $2,
			last_name = $3,
			email = $4,
			birthday = $5,
			address_id = $6,
			updated_at = $7
		WHERE id = $1
	`,
		f.ID,
		f.FirstName,
		f.LastName,
		f.Email,
		toNullTime(f.Birthday),
		toNullString(f.AddressID),
		f.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return friends.ErrNotFound
	}
	return nil
}

func (r *FriendsRepo) GetByID(ctx context.Context, id string) (friends.Friend, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return friends.Friend{}, friends.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+friendColumns+`
		FROM friends
		WHERE id = $1
	`, id)

	f, err := scanFriend(row)
	if errors.Is(err, sql.ErrNoRows) {
		return friends.Friend{}, friends.ErrNotFound
	}
	return f, err
}

func (r *FriendsRepo) List(ctx context.Context, filter friends.ListFilter) ([]friends.Friend, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+friendColumns+`
		FROM friends
		WHERE ($1 OR seeded = FALSE)
		ORDER BY last_name ASC, first_name ASC, id ASC
	`, filter.IncludeSeeded)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]friends.Friend, 0)
	for rows.Next() {
		f, err := scanFriend(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func scanFriend(s rowScanner) (friends.Friend, error) {
	var f friends.Friend
	var birthday sql.NullTime
	var addressID sql.NullString
	if err := s.Scan(
		&f.ID,
		&f.FirstName,
		&f.LastName,
		&f.Email,
		&birthday,
		&addressID,
		&f.Seeded,
		&f.CreatedAt,
		&f.UpdatedAt,
	); err != nil {
		return friends.Friend{}, err
	}
	// ojo: birthday es DATE, pgx lo mapea a time.Time midnight UTC
	f.Birthday = fromNullTime(birthday)
	f.AddressID = fromNullString(addressID)
	return f, nil
}
