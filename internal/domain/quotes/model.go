package quotes

import "time"

type Quote struct {
	ID       string
	FriendID string

	Text   string
	Author string

	Seeded bool

	CreatedAt time.Time
	// DeletedAt != nil => borrada (no se elimina la fila).
	DeletedAt *time.Time
}
