package pages

import (
	"context"
	"errors"
	"strings"

	"friends-directory/internal/domain/friends"
	"friends-directory/internal/domain/pets"
	"friends-directory/internal/domain/quotes"
	"friends-directory/internal/platform/logger"

	"github.com/google/uuid"
)

type FriendDetailView struct {
	Friend FriendCard
	Pets   []PetRow
	Quotes []QuoteRow
}

type FriendDetail struct {
	friends FriendsService
	pets    PetsService
	quotes  QuotesService
	log     logger.Logger
}

func NewFriendDetail(friendsSvc FriendsService, petsSvc PetsService, quotesSvc QuotesService, log logger.Logger) *FriendDetail {
	return &FriendDetail{
		friends: friendsSvc,
		pets:    petsSvc,
		quotes:  quotesSvc,
		log:     log.With(map[string]any{"page": "details"}),
	}
}

// Load: cualquier falla (id inválido, no existe, error de backend) vuelve al overview.
func (w *FriendDetail) Load(ctx context.Context, id string) Result {
	friendID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		w.log.Warn("invalid friend id provided", map[string]any{"id": id})
		return redirectToOverview()
	}

	f, err := w.friends.ReadFriend(ctx, friendID.String(), false)
	if err != nil {
		if errors.Is(err, friends.ErrNotFound) {
			w.log.Warn("friend not found", map[string]any{"friend_id": friendID.String()})
		} else {
			w.log.Error("error loading friend details", map[string]any{"friend_id": friendID.String(), "error": err.Error()})
		}
		return redirectToOverview()
	}

	return page(TplDetails, FriendDetailView{
		Friend: newFriendCard(f),
		Pets:   newPetRows(f.Pets),
		Quotes: newQuoteRows(f.Quotes),
	})
}

// DeletePet intenta borrar y siempre vuelve al detalle del friend; el resultado solo se loguea.
func (w *FriendDetail) DeletePet(ctx context.Context, petID, friendID string) Result {
	back := w.backTo(friendID)

	id, err := uuid.Parse(strings.TrimSpace(petID))
	if err != nil {
		w.log.Warn("invalid pet id provided", map[string]any{"pet_id": petID})
		return back
	}

	_, err = w.pets.DeletePet(ctx, id.String())
	switch {
	case err == nil:
		w.log.Info("pet deleted", map[string]any{"pet_id": id.String()})
	case errors.Is(err, pets.ErrNotFound):
		w.log.Warn("pet not found", map[string]any{"pet_id": id.String()})
	default:
		w.log.Error("error deleting pet", map[string]any{"pet_id": id.String(), "error": err.Error()})
	}
	return back
}

func (w *FriendDetail) DeleteQuote(ctx context.Context, quoteID, friendID string) Result {
	back := w.backTo(friendID)

	id, err := uuid.Parse(strings.TrimSpace(quoteID))
	if err != nil {
		w.log.Warn("invalid quote id provided", map[string]any{"quote_id": quoteID})
		return back
	}

	_, err = w.quotes.DeleteQuote(ctx, id.String())
	switch {
	case err == nil:
		w.log.Info("quote deleted", map[string]any{"quote_id": id.String()})
	case errors.Is(err, quotes.ErrNotFound):
		w.log.Warn("quote not found", map[string]any{"quote_id": id.String()})
	default:
		w.log.Error("error deleting quote", map[string]any{"quote_id": id.String(), "error": err.Error()})
	}
	return back
}

// backTo: el detalle de ese friend. Si el friendId no sirve, el propio detalle
// terminaría en el overview, así que se va directo.
func (w *FriendDetail) backTo(friendID string) Result {
	id, err := uuid.Parse(strings.TrimSpace(friendID))
	if err != nil {
		return redirectToOverview()
	}
	return redirect(DetailsRoute(id.String()))
}
