package addresses

import "time"

const (
	MinZipCode = 0
	MaxZipCode = 999999
)

// Address es la dirección postal que puede tener (a lo sumo) un friend.
type Address struct {
	ID string

	StreetAddress string
	ZipCode       int
	City          string
	Country       string

	// Seeded marca los registros cargados desde los datos demo.
	Seeded bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
