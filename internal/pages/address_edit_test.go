package pages

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddressForm() AddressForm {
	return AddressForm{
		StreetAddress: "221B Baker Street",
		ZipCode:       "1234",
		City:          "London",
		Country:       "United Kingdom",
	}
}

func TestAddressEdit_ZipCodeBounds(t *testing.T) {
	env := newTestEnv(t)
	w := NewAddressEdit(env.addresses, env.friends, env.log)

	for _, zip := range []string{"0", "999999", ""} {
		form := validAddressForm()
		form.ZipCode = zip
		_, errs := w.Validate(form)
		assert.NotContains(t, errs, "ZipCode", "zip=%q", zip)
	}

	for _, zip := range []string{"-1", "1000000", "12ab"} {
		form := validAddressForm()
		form.ZipCode = zip
		_, errs := w.Validate(form)
		assert.Equal(t, "Zip code must be between 0 and 999999.", errs["ZipCode"], "zip=%q", zip)
	}
}

func TestAddressEdit_TextFieldRules(t *testing.T) {
	env := newTestEnv(t)
	w := NewAddressEdit(env.addresses, env.friends, env.log)

	form := validAddressForm()
	form.StreetAddress = ""
	form.City = "Saint-Denis"
	form.Country = "   "

	res := w.Save(context.Background(), form)

	require.False(t, res.IsRedirect())
	assert.Equal(t, http.StatusUnprocessableEntity, res.Status)
	view := res.View.(AddressEditView)
	assert.Equal(t, "Street address is required.", view.Errors["StreetAddress"])
	assert.Equal(t, "City can only contain letters, numbers, and spaces.", view.Errors["City"])
	assert.Equal(t, "Country is required.", view.Errors["Country"])
	assert.True(t, view.IsNewAddress)

	all, err := env.addresses.ListAddresses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAddressEdit_CreateWithFriendLinksAddress(t *testing.T) {
	env := newTestEnv(t)
	w := NewAddressEdit(env.addresses, env.friends, env.log)
	f := env.createFriend(t, "Sherlock", "Holmes")

	form := validAddressForm()
	form.FriendID = f.ID
	res := w.Save(context.Background(), form)

	assert.Equal(t, DetailsRoute(f.ID), res.RedirectTo)

	all, err := env.addresses.ListAddresses(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)

	got, err := env.friends.ReadFriend(context.Background(), f.ID, false)
	require.NoError(t, err)
	require.NotNil(t, got.AddressID)
	assert.Equal(t, all[0].ID, *got.AddressID)
	assert.Equal(t, "United Kingdom", got.Country())
}

func TestAddressEdit_CreateWithoutFriendGoesToOverview(t *testing.T) {
	env := newTestEnv(t)
	w := NewAddressEdit(env.addresses, env.friends, env.log)

	res := w.Save(context.Background(), validAddressForm())

	assert.Equal(t, RouteOverview, res.RedirectTo)
}

func TestAddressEdit_LinkFailureKeepsAddress(t *testing.T) {
	env := newTestEnv(t)
	w := NewAddressEdit(env.addresses, failingFriends{}, env.log)

	friendID := uuid.NewString()
	form := validAddressForm()
	form.FriendID = friendID
	res := w.Save(context.Background(), form)

	assert.Equal(t, DetailsRoute(friendID), res.RedirectTo)
	all, err := env.addresses.ListAddresses(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAddressEdit_UpdateExisting(t *testing.T) {
	env := newTestEnv(t)
	w := NewAddressEdit(env.addresses, env.friends, env.log)
	a := env.createAddress(t, "Spain")

	loaded := w.Load(context.Background(), a.ID, "")
	require.False(t, loaded.IsRedirect())
	form := loaded.View.(AddressEditView).Form
	assert.Equal(t, "1000", form.ZipCode)

	form.City = "Madrid"
	res := w.Save(context.Background(), form)
	assert.Equal(t, RouteOverview, res.RedirectTo)

	got, err := env.addresses.ReadAddress(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Madrid", got.City)
}

func TestAddressEdit_LoadIgnoresBadFriendID(t *testing.T) {
	env := newTestEnv(t)
	w := NewAddressEdit(env.addresses, env.friends, env.log)

	res := w.Load(context.Background(), "", "nope")

	view := res.View.(AddressEditView)
	assert.True(t, view.IsNewAddress)
	assert.Empty(t, view.Form.FriendID)
}

func TestAddressEdit_LoadUnknownRedirects(t *testing.T) {
	env := newTestEnv(t)
	w := NewAddressEdit(env.addresses, env.friends, env.log)

	assert.Equal(t, RouteOverview, w.Load(context.Background(), uuid.NewString(), "").RedirectTo)
	assert.Equal(t, RouteOverview, w.Load(context.Background(), "bad", "").RedirectTo)
}
