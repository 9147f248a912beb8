package pages

import (
	"context"

	"friends-directory/internal/domain/addresses"
	"friends-directory/internal/domain/friends"
	"friends-directory/internal/domain/pets"
	"friends-directory/internal/domain/quotes"
)

// Contratos que consumen los workflows. *friends.Service, *addresses.Service,
// *pets.Service y *quotes.Service los cumplen; los tests usan fakes.

type FriendsService interface {
	ReadFriend(ctx context.Context, id string, includeDeleted bool) (friends.Friend, error)
	CreateFriend(ctx context.Context, in friends.Input) (friends.Friend, error)
	UpdateFriend(ctx context.Context, in friends.Input) (friends.Friend, error)
	ReadFriendsByCountry(ctx context.Context, useSeeds, includeDeleted bool) (map[string][]friends.Friend, error)
}

type AddressesService interface {
	ReadAddress(ctx context.Context, id string) (addresses.Address, error)
	CreateAddress(ctx context.Context, in addresses.Input) (addresses.Address, error)
	UpdateAddress(ctx context.Context, in addresses.Input) (addresses.Address, error)
}

type PetsService interface {
	DeletePet(ctx context.Context, id string) (pets.Pet, error)
}

type QuotesService interface {
	DeleteQuote(ctx context.Context, id string) (quotes.Quote, error)
}
