package pages

import (
	"errors"
	"strings"
	"sync"

	"friends-directory/internal/domain/addresses"
	"friends-directory/internal/domain/friends"

	"github.com/microcosm-cc/bluemonday"
)

const (
	msgCorrectFields       = "Please correct the highlighted fields."
	msgSaveFriendFailed    = "Failed to save friend. Please try again."
	msgSaveAddressFailed   = "Failed to save address. Please try again."
	msgLoadFriendFailed    = "An error occurred while loading the friend details."
	msgLoadAddressFailed   = "An error occurred while loading the address details."
	msgUnexpectedErrPrefix = "An error occurred: "
)

var (
	messagePolicyOnce sync.Once
	messagePolicy     *bluemonday.Policy
)

// sanitizeMessage quita cualquier markup de un texto que viene de errores del backend.
func sanitizeMessage(raw string) string {
	messagePolicyOnce.Do(func() {
		messagePolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(messagePolicy.Sanitize(raw))
}

// failureMessage es el único punto donde un error de guardado se traduce a texto
// para el usuario. "No encontrado" => mensaje de reintento; el resto => detalle.
func failureMessage(err error, notFoundMsg string) string {
	if errors.Is(err, friends.ErrNotFound) || errors.Is(err, addresses.ErrNotFound) {
		return notFoundMsg
	}
	return msgUnexpectedErrPrefix + sanitizeMessage(err.Error())
}
