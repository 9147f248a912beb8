package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"friends-directory/internal/domain/addresses"
)

type AddressesRepo struct {
	db *sql.DB
}

func NewAddressesRepo(db *sql.DB) *AddressesRepo {
	return &AddressesRepo{db: db}
}

const addressColumns = `id, street_address, zip_code, city, country, seeded, created_at, updated_at`

func (r *AddressesRepo) Create(ctx context.Context, a addresses.Address) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO addresses (`+addressColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		a.ID,
		a.StreetAddress,
		a.ZipCode,
		a.City,
		a.Country,
		a.Seeded,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AddressesRepo) Update(ctx context.Context, a addresses.Address) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE addresses
		SET
			street_address = $2,
			zip_code = $3,
			city = $4,
			country = $5,
			updated_at = $6
		WHERE id = $1
	`,
		a.ID,
		a.StreetAddress,
		a.ZipCode,
		a.City,
		a.Country,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return addresses.ErrNotFound
	}
	return nil
}

func (r *AddressesRepo) GetByID(ctx context.Context, id string) (addresses.Address, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return addresses.Address{}, addresses.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+addressColumns+`
		FROM addresses
		WHERE id = $1
	`, id)

	a, err := scanAddress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return addresses.Address{}, addresses.ErrNotFound
	}
	return a, err
}

func (r *AddressesRepo) List(ctx context.Context) ([]addresses.Address, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+addressColumns+`
		FROM addresses
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]addresses.Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAddress(s rowScanner) (addresses.Address, error) {
	var a addresses.Address
	if err := s.Scan(
		&a.ID,
		&a.StreetAddress,
		&a.ZipCode,
		&a.City,
		&a.Country,
		&a.Seeded,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return addresses.Address{}, err
	}
	return a, nil
}
