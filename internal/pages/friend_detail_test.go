package pages

import (
	"context"
	"testing"

	"friends-directory/internal/domain/pets"
	"friends-directory/internal/domain/quotes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendDetail_LoadShowsDependents(t *testing.T) {
	env := newTestEnv(t)
	w := NewFriendDetail(env.friends, env.pets, env.quotes, env.log)
	f := env.createFriend(t, "Jane", "Doe")

	_, err := env.pets.Create(context.Background(), f.ID, pets.CreateInput{Name: "Rex", Kind: pets.KindDog})
	require.NoError(t, err)
	_, err = env.quotes.Create(context.Background(), f.ID, quotes.CreateInput{Text: "Hello"})
	require.NoError(t, err)

	res := w.Load(context.Background(), f.ID)

	require.False(t, res.IsRedirect())
	view := res.View.(FriendDetailView)
	assert.Equal(t, "Jane Doe", view.Friend.FullName)
	require.Len(t, view.Pets, 1)
	assert.Equal(t, "Rex", view.Pets[0].Name)
	assert.Equal(t, "happy", view.Pets[0].Mood)
	require.Len(t, view.Quotes, 1)
	assert.Equal(t, "Unknown", view.Quotes[0].Author)
}

func TestFriendDetail_LoadFailuresRedirect(t *testing.T) {
	env := newTestEnv(t)
	w := NewFriendDetail(env.friends, env.pets, env.quotes, env.log)

	assert.Equal(t, RouteOverview, w.Load(context.Background(), "").RedirectTo)
	assert.Equal(t, RouteOverview, w.Load(context.Background(), "zzz").RedirectTo)
	assert.Equal(t, RouteOverview, w.Load(context.Background(), uuid.NewString()).RedirectTo)

	broken := NewFriendDetail(failingFriends{}, env.pets, env.quotes, env.log)
	assert.Equal(t, RouteOverview, broken.Load(context.Background(), uuid.NewString()).RedirectTo)
}

func TestFriendDetail_DeleteUnknownPetStillRedirectsToFriend(t *testing.T) {
	env := newTestEnv(t)
	w := NewFriendDetail(env.friends, env.pets, env.quotes, env.log)
	f := env.createFriend(t, "Jane", "Doe")

	res := w.DeletePet(context.Background(), uuid.NewString(), f.ID)
	assert.Equal(t, DetailsRoute(f.ID), res.RedirectTo)

	res = w.DeletePet(context.Background(), "garbage", f.ID)
	assert.Equal(t, DetailsRoute(f.ID), res.RedirectTo)

	broken := NewFriendDetail(env.friends, failingPets{}, env.quotes, env.log)
	res = broken.DeletePet(context.Background(), uuid.NewString(), f.ID)
	assert.Equal(t, DetailsRoute(f.ID), res.RedirectTo)
}

func TestFriendDetail_DeleteHidesDependents(t *testing.T) {
	env := newTestEnv(t)
	w := NewFriendDetail(env.friends, env.pets, env.quotes, env.log)
	f := env.createFriend(t, "Jane", "Doe")

	p, err := env.pets.Create(context.Background(), f.ID, pets.CreateInput{Name: "Rex", Kind: pets.KindDog})
	require.NoError(t, err)
	q, err := env.quotes.Create(context.Background(), f.ID, quotes.CreateInput{Text: "Hello", Author: "Jane"})
	require.NoError(t, err)

	assert.Equal(t, DetailsRoute(f.ID), w.DeletePet(context.Background(), p.ID, f.ID).RedirectTo)
	assert.Equal(t, DetailsRoute(f.ID), w.DeleteQuote(context.Background(), q.ID, f.ID).RedirectTo)

	view := w.Load(context.Background(), f.ID).View.(FriendDetailView)
	assert.Empty(t, view.Pets)
	assert.Empty(t, view.Quotes)

	got, err := env.friends.ReadFriend(context.Background(), f.ID, true)
	require.NoError(t, err)
	assert.Len(t, got.Pets, 1)
	assert.Len(t, got.Quotes, 1)
}

func TestFriendDetail_DeleteWithoutFriendGoesToOverview(t *testing.T) {
	env := newTestEnv(t)
	w := NewFriendDetail(env.friends, env.pets, env.quotes, env.log)

	assert.Equal(t, RouteOverview, w.DeleteQuote(context.Background(), uuid.NewString(), "").RedirectTo)
}
