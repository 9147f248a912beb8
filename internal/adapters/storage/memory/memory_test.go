package memory_test

import (
	"context"
	"testing"
	"time"

	mem "friends-directory/internal/adapters/storage/memory"
	"friends-directory/internal/domain/addresses"
	"friends-directory/internal/domain/friends"
	"friends-directory/internal/domain/pets"
	"friends-directory/internal/domain/quotes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendRepo_StoresOnlyOwnColumns(t *testing.T) {
	repo := mem.NewFriendRepo()
	ctx := context.Background()

	f := friends.Friend{
		ID:        "f1",
		FirstName: "Ada",
		Address:   &addresses.Address{ID: "a1"},
		Pets:      []pets.Pet{{ID: "p1"}},
	}
	require.NoError(t, repo.Create(ctx, f))
	assert.Error(t, repo.Create(ctx, f))

	got, err := repo.GetByID(ctx, "f1")
	require.NoError(t, err)
	assert.Nil(t, got.Address)
	assert.Nil(t, got.Pets)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, friends.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, friends.Friend{ID: "missing"}), friends.ErrNotFound)
}

func TestFriendRepo_ListFiltersSeeded(t *testing.T) {
	repo := mem.NewFriendRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, friends.Friend{ID: "mine"}))
	require.NoError(t, repo.Create(ctx, friends.Friend{ID: "demo", Seeded: true}))

	own, err := repo.List(ctx, friends.ListFilter{IncludeSeeded: false})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "mine", own[0].ID)

	all, err := repo.List(ctx, friends.ListFilter{IncludeSeeded: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPetRepo_SoftDelete(t *testing.T) {
	repo := mem.NewPetRepo()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Create(ctx, pets.Pet{ID: "p1", FriendID: "f1", CreatedAt: now}))
	require.NoError(t, repo.Create(ctx, pets.Pet{ID: "p2", FriendID: "f1", CreatedAt: now.Add(time.Second)}))
	require.NoError(t, repo.Create(ctx, pets.Pet{ID: "p3", FriendID: "f2", CreatedAt: now}))

	require.NoError(t, repo.SoftDelete(ctx, "p1", now))
	assert.ErrorIs(t, repo.SoftDelete(ctx, "p1", now), pets.ErrNotFound)
	assert.ErrorIs(t, repo.SoftDelete(ctx, "nope", now), pets.ErrNotFound)

	visible, err := repo.ListByFriend(ctx, "f1", false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "p2", visible[0].ID)

	all, err := repo.ListByFriend(ctx, "f1", true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "p1", all[0].ID)

	p1, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, p1.Deleted())
}

func TestQuoteRepo_SoftDelete(t *testing.T) {
	repo := mem.NewQuoteRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, quotes.Quote{ID: "q1", FriendID: "f1", CreatedAt: time.Now()}))
	require.NoError(t, repo.SoftDelete(ctx, "q1", time.Now()))

	visible, err := repo.ListByFriend(ctx, "f1", false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := repo.ListByFriend(ctx, "f1", true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAddressRepo_CRUD(t *testing.T) {
	repo := mem.NewAddressRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, addresses.Address{ID: "a1", City: "Lima"}))
	require.NoError(t, repo.Update(ctx, addresses.Address{ID: "a1", City: "Cusco"}))
	assert.ErrorIs(t, repo.Update(ctx, addresses.Address{ID: "a2"}), addresses.ErrNotFound)

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Cusco", got.City)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
