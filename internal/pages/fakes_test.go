package pages

import (
	"context"
	"errors"
	"testing"

	mem "friends-directory/internal/adapters/storage/memory"
	"friends-directory/internal/domain/addresses"
	"friends-directory/internal/domain/friends"
	"friends-directory/internal/domain/pets"
	"friends-directory/internal/domain/quotes"
	"friends-directory/internal/platform/logger"

	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend unavailable")

// testEnv arma los services reales sobre repos in-memory.
type testEnv struct {
	friends   *recordingFriends
	addresses *addresses.Service
	pets      *pets.Service
	quotes    *quotes.Service
	log       logger.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	petRepo := mem.NewPetRepo()
	quoteRepo := mem.NewQuoteRepo()
	addrRepo := mem.NewAddressRepo()

	addrSvc := addresses.NewService(addrRepo)
	friendsSvc := friends.NewService(mem.NewFriendRepo(), addrRepo, petRepo, quoteRepo)

	return &testEnv{
		friends:   &recordingFriends{FriendsService: friendsSvc},
		addresses: addrSvc,
		pets:      pets.NewService(petRepo),
		quotes:    quotes.NewService(quoteRepo),
		log:       logger.NewNop(),
	}
}

func (e *testEnv) createFriend(t *testing.T, first, last string) friends.Friend {
	t.Helper()
	f, err := e.friends.FriendsService.CreateFriend(context.Background(), friends.Input{
		FirstName: first,
		LastName:  last,
		Email:     first + "@example.com",
	})
	require.NoError(t, err)
	return f
}

func (e *testEnv) createAddress(t *testing.T, country string) addresses.Address {
	t.Helper()
	a, err := e.addresses.CreateAddress(context.Background(), addresses.Input{
		StreetAddress: "1 Main Street",
		ZipCode:       1000,
		City:          "Springfield",
		Country:       country,
	})
	require.NoError(t, err)
	return a
}

// recordingFriends cuenta las escrituras para poder afirmar que no hubo mutación.
type recordingFriends struct {
	FriendsService
	creates int
	updates int
}

func (r *recordingFriends) CreateFriend(ctx context.Context, in friends.Input) (friends.Friend, error) {
	r.creates++
	return r.FriendsService.CreateFriend(ctx, in)
}

func (r *recordingFriends) UpdateFriend(ctx context.Context, in friends.Input) (friends.Friend, error) {
	r.updates++
	return r.FriendsService.UpdateFriend(ctx, in)
}

// failingFriends simula un backend caído.
type failingFriends struct{}

func (failingFriends) ReadFriend(context.Context, string, bool) (friends.Friend, error) {
	return friends.Friend{}, errBackend
}

func (failingFriends) CreateFriend(context.Context, friends.Input) (friends.Friend, error) {
	return friends.Friend{}, errBackend
}

func (failingFriends) UpdateFriend(context.Context, friends.Input) (friends.Friend, error) {
	return friends.Friend{}, errBackend
}

func (failingFriends) ReadFriendsByCountry(context.Context, bool, bool) (map[string][]friends.Friend, error) {
	return nil, errBackend
}

type failingPets struct{}

func (failingPets) DeletePet(context.Context, string) (pets.Pet, error) {
	return pets.Pet{}, errBackend
}
