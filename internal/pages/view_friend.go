package pages

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"friends-directory/internal/domain/friends"
	"friends-directory/internal/platform/logger"

	"github.com/google/uuid"
)

type ViewFriendView struct {
	Friend FriendCard
}

// ViewFriend es la vista simple por ?id=. A diferencia del detalle, un id malo
// no se tapa con un redirect: se responde 400.
type ViewFriend struct {
	friends FriendsService
	log     logger.Logger
}

func NewViewFriend(svc FriendsService, log logger.Logger) *ViewFriend {
	return &ViewFriend{
		friends: svc,
		log:     log.With(map[string]any{"page": "view_friend"}),
	}
}

func (w *ViewFriend) Load(ctx context.Context, rawID string) Result {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		w.log.Warn("invalid friend id in query", map[string]any{"id": rawID})
		return errorPage(http.StatusBadRequest, "A valid friend id is required.")
	}

	f, err := w.friends.ReadFriend(ctx, id.String(), false)
	if err != nil {
		if errors.Is(err, friends.ErrNotFound) {
			return errorPage(http.StatusNotFound, "Friend not found.")
		}
		w.log.Error("error loading friend", map[string]any{"friend_id": id.String(), "error": err.Error()})
		return errorPage(http.StatusInternalServerError, "The friend could not be loaded.")
	}

	return page(TplViewFriend, ViewFriendView{Friend: newFriendCard(f)})
}
