package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"friends-directory/internal/domain/addresses"
	"friends-directory/internal/domain/friends"
	"friends-directory/internal/domain/pets"
	"friends-directory/internal/domain/quotes"
	"friends-directory/internal/platform/logger"

	"gopkg.in/yaml.v3"
)

//go:embed seeds.yaml
var defaultSeeds []byte

type File struct {
	Friends []Friend `yaml:"friends"`
}

type Friend struct {
	FirstName string   `yaml:"first_name"`
	LastName  string   `yaml:"last_name"`
	Email     string   `yaml:"email"`
	Birthday  string   `yaml:"birthday"`
	Address   *Address `yaml:"address"`
	Pets      []Pet    `yaml:"pets"`
	Quotes    []Quote  `yaml:"quotes"`
}

type Address struct {
	StreetAddress string `yaml:"street_address"`
	ZipCode       int    `yaml:"zip_code"`
	City          string `yaml:"city"`
	Country       string `yaml:"country"`
}

type Pet struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Mood string `yaml:"mood"`
}

type Quote struct {
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
}

func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse seeds: %w", err)
	}
	return f, nil
}

// Default devuelve los datos demo embebidos en el binario.
func Default() (File, error) {
	return Parse(defaultSeeds)
}

type FriendStore interface {
	CreateFriend(ctx context.Context, in friends.Input) (friends.Friend, error)
	ListFriends(ctx context.Context, useSeeds bool) ([]friends.Friend, error)
}

type AddressCreator interface {
	CreateAddress(ctx context.Context, in addresses.Input) (addresses.Address, error)
}

type PetCreator interface {
	Create(ctx context.Context, friendID string, in pets.CreateInput) (pets.Pet, error)
}

type QuoteCreator interface {
	Create(ctx context.Context, friendID string, in quotes.CreateInput) (quotes.Quote, error)
}

type Loader struct {
	Friends   FriendStore
	Addresses AddressCreator
	Pets      PetCreator
	Quotes    QuoteCreator
	Logger    logger.Logger
}

type Summary struct {
	Skipped   bool
	Friends   int
	Addresses int
	Pets      int
	Quotes    int
}

// Load carga el archivo a través de los services (misma validación que la UI),
// marcando todo como Seeded. Si ya hay datos demo no hace nada.
func (l Loader) Load(ctx context.Context, file File) (Summary, error) {
	log := l.Logger
	if log == nil {
		log = logger.NewNop()
	}

	existing, err := l.Friends.ListFriends(ctx, true)
	if err != nil {
		return Summary{}, fmt.Errorf("list friends: %w", err)
	}
	for _, f := range existing {
		if f.Seeded {
			log.Info("seed data already present", map[string]any{"friends": len(existing)})
			return Summary{Skipped: true}, nil
		}
	}

	var sum Summary
	for _, sf := range file.Friends {
		in := friends.Input{
			FirstName: sf.FirstName,
			LastName:  sf.LastName,
			Email:     sf.Email,
			Seeded:    true,
		}
		if sf.Birthday != "" {
			t, err := time.Parse("2006-01-02", sf.Birthday)
			if err != nil {
				return sum, fmt.Errorf("seed %s %s: birthday: %w", sf.FirstName, sf.LastName, err)
			}
			in.Birthday = &t
		}

		if sf.Address != nil {
			a, err := l.Addresses.CreateAddress(ctx, addresses.Input{
				StreetAddress: sf.Address.StreetAddress,
				ZipCode:       sf.Address.ZipCode,
				City:          sf.Address.City,
				Country:       sf.Address.Country,
				Seeded:        true,
			})
			if err != nil {
				return sum, fmt.Errorf("seed address for %s %s: %w", sf.FirstName, sf.LastName, err)
			}
			in.AddressID = &a.ID
			sum.Addresses++
		}

		f, err := l.Friends.CreateFriend(ctx, in)
		if err != nil {
			return sum, fmt.Errorf("seed friend %s %s: %w", sf.FirstName, sf.LastName, err)
		}
		sum.Friends++

		for _, sp := range sf.Pets {
			if _, err := l.Pets.Create(ctx, f.ID, pets.CreateInput{
				Name:   sp.Name,
				Kind:   pets.Kind(sp.Kind),
				Mood:   pets.Mood(sp.Mood),
				Seeded: true,
			}); err != nil {
				return sum, fmt.Errorf("seed pet %s: %w", sp.Name, err)
			}
			sum.Pets++
		}
		for _, sq := range sf.Quotes {
			if _, err := l.Quotes.Create(ctx, f.ID, quotes.CreateInput{
				Text:   sq.Text,
				Author: sq.Author,
				Seeded: true,
			}); err != nil {
				return sum, fmt.Errorf("seed quote for %s: %w", sf.FirstName, err)
			}
			sum.Quotes++
		}
	}

	log.Info("seed data loaded", map[string]any{
		"friends":   sum.Friends,
		"addresses": sum.Addresses,
		"pets":      sum.Pets,
		"quotes":    sum.Quotes,
	})
	return sum, nil
}
