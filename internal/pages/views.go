package pages

import (
	"strconv"
	"time"

	"friends-directory/internal/domain/friends"
	"friends-directory/internal/domain/pets"
	"friends-directory/internal/domain/quotes"
)

const (
	TplOverview    = "overview.html"
	TplDetails     = "details.html"
	TplEditFriend  = "edit_friend.html"
	TplEditAddress = "edit_address.html"
	TplViewFriend  = "view_friend.html"
	TplError       = "error.html"
)

const dateLayout = "2006-01-02"

// FriendCard es un friend listo para mostrar (sin punteros ni fechas crudas).
type FriendCard struct {
	ID         string
	FirstName  string
	LastName   string
	FullName   string
	Email      string
	Birthday   string
	HasAddress bool
	AddressID  string
	Street     string
	ZipCode    string
	City       string
	Country    string
	PetCount   int
	QuoteCount int
}

type PetRow struct {
	ID   string
	Name string
	Kind string
	Mood string
}

type QuoteRow struct {
	ID     string
	Text   string
	Author string
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func newFriendCard(f friends.Friend) FriendCard {
	c := FriendCard{
		ID:         f.ID,
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		FullName:   f.FullName(),
		Email:      f.Email,
		Birthday:   formatDate(f.Birthday),
		Country:    f.Country(),
		PetCount:   len(f.Pets),
		QuoteCount: len(f.Quotes),
	}
	if f.Address != nil {
		c.HasAddress = true
		c.AddressID = f.Address.ID
		c.Street = f.Address.StreetAddress
		c.ZipCode = strconv.Itoa(f.Address.ZipCode)
		c.City = f.Address.City
	}
	return c
}

func newPetRows(items []pets.Pet) []PetRow {
	out := make([]PetRow, 0, len(items))
	for _, p := range items {
		out = append(out, PetRow{ID: p.ID, Name: p.Name, Kind: string(p.Kind), Mood: string(p.Mood)})
	}
	return out
}

func newQuoteRows(items []quotes.Quote) []QuoteRow {
	out := make([]QuoteRow, 0, len(items))
	for _, q := range items {
		out = append(out, QuoteRow{ID: q.ID, Text: q.Text, Author: q.Author})
	}
	return out
}
