package pages

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"friends-directory/internal/domain/friends"
	"friends-directory/internal/domain/validation"
	"friends-directory/internal/platform/logger"

	"github.com/google/uuid"
)

// FriendForm son los campos enviados por el formulario, tal cual llegaron.
type FriendForm struct {
	FriendID  string
	FirstName string
	LastName  string
	Email     string
	Birthday  string // YYYY-MM-DD, opcional
	AddressID string
}

type FriendEditView struct {
	Form         FriendForm
	Friend       *FriendCard
	IsNewFriend  bool
	ErrorMessage string
	Errors       validation.Errors
}

type FriendEdit struct {
	friends FriendsService
	log     logger.Logger
	now     func() time.Time
}

func NewFriendEdit(svc FriendsService, log logger.Logger) *FriendEdit {
	return &FriendEdit{
		friends: svc,
		log:     log.With(map[string]any{"page": "edit_friend"}),
		now:     time.Now,
	}
}

func formFromFriend(f friends.Friend) FriendForm {
	form := FriendForm{
		FriendID:  f.ID,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Birthday:  formatDate(f.Birthday),
	}
	if f.AddressID != nil {
		form.AddressID = *f.AddressID
	}
	return form
}

// Load: sin id => formulario vacío de alta; id inválido o inexistente => overview.
func (w *FriendEdit) Load(ctx context.Context, id string) Result {
	if id == "" {
		return page(TplEditFriend, FriendEditView{IsNewFriend: true, Errors: validation.Errors{}})
	}

	friendID, err := uuid.Parse(id)
	if err != nil {
		w.log.Warn("invalid friend id provided", map[string]any{"id": id})
		return redirectToOverview()
	}

	f, err := w.friends.ReadFriend(ctx, friendID.String(), false)
	if err != nil {
		if errors.Is(err, friends.ErrNotFound) {
			w.log.Warn("friend not found", map[string]any{"friend_id": friendID.String()})
			return redirectToOverview()
		}
		w.log.Error("error loading friend for edit", map[string]any{"friend_id": friendID.String(), "error": err.Error()})
		return page(TplEditFriend, FriendEditView{
			Form:         FriendForm{FriendID: friendID.String()},
			ErrorMessage: msgLoadFriendFailed,
			Errors:       validation.Errors{},
		})
	}

	card := newFriendCard(f)
	return page(TplEditFriend, FriendEditView{
		Form:   formFromFriend(f),
		Friend: &card,
		Errors: validation.Errors{},
	})
}

// Validate revisa los campos crudos y arma el payload de create/update.
func (w *FriendEdit) Validate(form FriendForm) (friends.Input, validation.Errors) {
	in := friends.Input{
		ID:        strings.TrimSpace(form.FriendID),
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
	}
	if id := strings.TrimSpace(form.AddressID); id != "" {
		in.AddressID = &id
	}

	var birthdayErr string
	if raw := strings.TrimSpace(form.Birthday); raw != "" {
		t, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			birthdayErr = "Birthday must be a valid date."
		} else {
			in.Birthday = &t
		}
	}

	errs := friends.Validate(in, w.now())
	if birthdayErr != "" {
		errs.Set("Birthday", birthdayErr)
	}

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	return in, errs
}

// Save valida, y si no hay errores crea o actualiza según haya id.
func (w *FriendEdit) Save(ctx context.Context, form FriendForm) Result {
	isNew, friendID, ok := parseOptionalID(form.FriendID)
	if !ok {
		w.log.Warn("invalid friend id provided", map[string]any{"id": form.FriendID})
		return redirectToOverview()
	}
	form.FriendID = friendID

	in, errs := w.Validate(form)
	if len(errs) > 0 {
		return w.invalid(ctx, form, isNew, errs)
	}

	var (
		saved friends.Friend
		err   error
	)
	if isNew {
		saved, err = w.friends.CreateFriend(ctx, in)
	} else {
		saved, err = w.friends.UpdateFriend(ctx, in)
	}
	if err != nil {
		if fields := validation.FieldsOf(err); fields != nil {
			return w.invalid(ctx, form, isNew, fields)
		}
		w.log.Error("error saving friend", map[string]any{"friend_id": friendID, "error": err.Error()})
		return page(TplEditFriend, FriendEditView{
			Form:         form,
			IsNewFriend:  isNew,
			ErrorMessage: failureMessage(err, msgSaveFriendFailed),
			Errors:       validation.Errors{},
		})
	}

	action := "updated"
	if isNew {
		action = "created"
	}
	w.log.Info("friend "+action, map[string]any{"friend_id": saved.ID})
	return redirect(DetailsRoute(saved.ID))
}

// invalid vuelve a mostrar el formulario; si es una edición se relee el friend guardado.
func (w *FriendEdit) invalid(ctx context.Context, form FriendForm, isNew bool, errs validation.Errors) Result {
	view := FriendEditView{
		Form:         form,
		IsNewFriend:  isNew,
		ErrorMessage: msgCorrectFields,
		Errors:       errs,
	}
	if !isNew {
		if f, err := w.friends.ReadFriend(ctx, form.FriendID, false); err == nil {
			card := newFriendCard(f)
			view.Friend = &card
			view.Form.AddressID = ""
			if f.AddressID != nil {
				view.Form.AddressID = *f.AddressID
			}
		}
	}
	return pageWithStatus(http.StatusUnprocessableEntity, TplEditFriend, view)
}

// parseOptionalID: "" o el UUID nulo => nuevo. ok=false si no es un UUID.
func parseOptionalID(raw string) (isNew bool, id string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true, "", true
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return false, "", false
	}
	if parsed == uuid.Nil {
		return true, "", true
	}
	return false, parsed.String(), true
}
