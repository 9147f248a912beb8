package pages

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"friends-directory/internal/domain/addresses"
	"friends-directory/internal/domain/friends"
	"friends-directory/internal/domain/validation"
	"friends-directory/internal/platform/logger"

	"github.com/google/uuid"
)

type AddressForm struct {
	AddressID     string
	StreetAddress string
	ZipCode       string
	City          string
	Country       string

	// FriendID opcional: el friend al que se vincula una dirección nueva.
	FriendID string
}

type AddressEditView struct {
	Form         AddressForm
	Address      *addresses.Address
	IsNewAddress bool
	ErrorMessage string
	Errors       validation.Errors
}

type AddressEdit struct {
	addresses AddressesService
	friends   FriendsService
	log       logger.Logger
}

func NewAddressEdit(addrs AddressesService, friendsSvc FriendsService, log logger.Logger) *AddressEdit {
	return &AddressEdit{
		addresses: addrs,
		friends:   friendsSvc,
		log:       log.With(map[string]any{"page": "edit_address"}),
	}
}

func formFromAddress(a addresses.Address, friendID string) AddressForm {
	return AddressForm{
		AddressID:     a.ID,
		StreetAddress: a.StreetAddress,
		ZipCode:       strconv.Itoa(a.ZipCode),
		City:          a.City,
		Country:       a.Country,
		FriendID:      friendID,
	}
}

func (w *AddressEdit) Load(ctx context.Context, id, friendID string) Result {
	friendID = w.normalizeFriendID(friendID)

	if id == "" {
		return page(TplEditAddress, AddressEditView{
			Form:         AddressForm{FriendID: friendID},
			IsNewAddress: true,
			Errors:       validation.Errors{},
		})
	}

	addressID, err := uuid.Parse(id)
	if err != nil {
		w.log.Warn("invalid address id provided", map[string]any{"id": id})
		return redirectToOverview()
	}

	a, err := w.addresses.ReadAddress(ctx, addressID.String())
	if err != nil {
		if errors.Is(err, addresses.ErrNotFound) {
			w.log.Warn("address not found", map[string]any{"address_id": addressID.String()})
			return redirectToOverview()
		}
		w.log.Error("error loading address for edit", map[string]any{"address_id": addressID.String(), "error": err.Error()})
		return page(TplEditAddress, AddressEditView{
			Form:         AddressForm{AddressID: addressID.String(), FriendID: friendID},
			ErrorMessage: msgLoadAddressFailed,
			Errors:       validation.Errors{},
		})
	}

	return page(TplEditAddress, AddressEditView{
		Form:    formFromAddress(a, friendID),
		Address: &a,
		Errors:  validation.Errors{},
	})
}

// Validate revisa los campos crudos. Un zip vacío equivale a 0.
func (w *AddressEdit) Validate(form AddressForm) (addresses.Input, validation.Errors) {
	in := addresses.Input{
		ID:            strings.TrimSpace(form.AddressID),
		StreetAddress: form.StreetAddress,
		City:          form.City,
		Country:       form.Country,
	}

	zipOK := true
	if raw := strings.TrimSpace(form.ZipCode); raw != "" {
		zip, err := strconv.Atoi(raw)
		if err != nil {
			zipOK = false
		} else {
			in.ZipCode = zip
		}
	}

	errs := addresses.Validate(in)
	if !zipOK {
		errs.Set("ZipCode", "Zip code must be between 0 and 999999.")
	}

	in.StreetAddress = strings.TrimSpace(in.StreetAddress)
	in.City = strings.TrimSpace(in.City)
	in.Country = strings.TrimSpace(in.Country)
	return in, errs
}

func (w *AddressEdit) Save(ctx context.Context, form AddressForm) Result {
	isNew, addressID, ok := parseOptionalID(form.AddressID)
	if !ok {
		w.log.Warn("invalid address id provided", map[string]any{"id": form.AddressID})
		return redirectToOverview()
	}
	form.AddressID = addressID
	form.FriendID = w.normalizeFriendID(form.FriendID)

	in, errs := w.Validate(form)
	if len(errs) > 0 {
		return w.invalid(ctx, form, isNew, errs)
	}

	var (
		saved addresses.Address
		err   error
	)
	if isNew {
		saved, err = w.addresses.CreateAddress(ctx, in)
	} else {
		saved, err = w.addresses.UpdateAddress(ctx, in)
	}
	if err != nil {
		if fields := validation.FieldsOf(err); fields != nil {
			return w.invalid(ctx, form, isNew, fields)
		}
		w.log.Error("error saving address", map[string]any{"address_id": addressID, "error": err.Error()})
		return page(TplEditAddress, AddressEditView{
			Form:         form,
			IsNewAddress: isNew,
			ErrorMessage: failureMessage(err, msgSaveAddressFailed),
			Errors:       validation.Errors{},
		})
	}

	action := "updated"
	if isNew {
		action = "created"
	}
	w.log.Info("address "+action, map[string]any{"address_id": saved.ID})

	if isNew && form.FriendID != "" {
		w.linkFriend(ctx, form.FriendID, saved.ID)
	}

	if form.FriendID != "" {
		return redirect(DetailsRoute(form.FriendID))
	}
	return redirectToOverview()
}

// linkFriend apunta el friend a la dirección recién creada. Es un segundo paso
// no atómico: si falla, la dirección queda creada y solo se registra el fallo.
func (w *AddressEdit) linkFriend(ctx context.Context, friendID, addressID string) {
	f, err := w.friends.ReadFriend(ctx, friendID, false)
	if err != nil {
		w.log.Warn("friend to link not available", map[string]any{"friend_id": friendID, "address_id": addressID, "error": err.Error()})
		return
	}

	in := friends.InputFrom(f)
	in.AddressID = &addressID
	if _, err := w.friends.UpdateFriend(ctx, in); err != nil {
		w.log.Error("failed to link address to friend", map[string]any{"friend_id": friendID, "address_id": addressID, "error": err.Error()})
		return
	}
	w.log.Info("address linked to friend", map[string]any{"friend_id": friendID, "address_id": addressID})
}

func (w *AddressEdit) invalid(ctx context.Context, form AddressForm, isNew bool, errs validation.Errors) Result {
	view := AddressEditView{
		Form:         form,
		IsNewAddress: isNew,
		ErrorMessage: msgCorrectFields,
		Errors:       errs,
	}
	if !isNew {
		if a, err := w.addresses.ReadAddress(ctx, form.AddressID); err == nil {
			view.Address = &a
		}
	}
	return pageWithStatus(http.StatusUnprocessableEntity, TplEditAddress, view)
}

// normalizeFriendID descarta (con warning) un friendId que no es UUID.
func (w *AddressEdit) normalizeFriendID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		w.log.Warn("ignoring invalid friend id", map[string]any{"friend_id": raw})
		return ""
	}
	return id.String()
}
