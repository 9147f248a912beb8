package friends

import (
	"time"

	"friends-directory/internal/domain/addresses"
	"friends-directory/internal/domain/pets"
	"friends-directory/internal/domain/quotes"
)

// UnknownCountry agrupa en el overview a los friends sin dirección.
const UnknownCountry = "Unknown"

// Friend es la entidad central. Address, Pets y Quotes se hidratan al leer;
// el repositorio solo persiste AddressID.
type Friend struct {
	ID string

	FirstName string
	LastName  string
	Email     string
	Birthday  *time.Time

	AddressID *string
	Address   *addresses.Address

	Pets   []pets.Pet
	Quotes []quotes.Quote

	Seeded bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (f Friend) FullName() string {
	return f.FirstName + " " + f.LastName
}

// Country devuelve el país de la dirección o UnknownCountry.
func (f Friend) Country() string {
	if f.Address == nil || f.Address.Country == "" {
		return UnknownCountry
	}
	return f.Address.Country
}
