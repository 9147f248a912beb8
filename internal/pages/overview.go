package pages

import (
	"context"
	"net/http"
	"sort"

	"friends-directory/internal/domain/friends"
	"friends-directory/internal/platform/logger"
)

type CountryGroup struct {
	Country string
	Friends []FriendCard
}

type OverviewView struct {
	UseSeeds  bool
	Countries []CountryGroup
	Total     int

	// FriendsByCountry es el mapeo tal cual lo devolvió el backend.
	FriendsByCountry map[string][]friends.Friend
}

type Overview struct {
	friends FriendsService
	log     logger.Logger
}

func NewOverview(svc FriendsService, log logger.Logger) *Overview {
	return &Overview{
		friends: svc,
		log:     log.With(map[string]any{"page": "overview"}),
	}
}

func (w *Overview) Load(ctx context.Context, useSeeds bool) Result {
	groups, err := w.friends.ReadFriendsByCountry(ctx, useSeeds, false)
	if err != nil {
		w.log.Error("error reading friends by country", map[string]any{"use_seeds": useSeeds, "error": err.Error()})
		return errorPage(http.StatusInternalServerError, "The friends overview could not be loaded.")
	}

	view := OverviewView{
		UseSeeds:         useSeeds,
		FriendsByCountry: groups,
		Countries:        make([]CountryGroup, 0, len(groups)),
	}
	for country, items := range groups {
		cards := make([]FriendCard, 0, len(items))
		for _, f := range items {
			cards = append(cards, newFriendCard(f))
		}
		view.Countries = append(view.Countries, CountryGroup{Country: country, Friends: cards})
		view.Total += len(items)
	}
	sort.Slice(view.Countries, func(i, j int) bool {
		return view.Countries[i].Country < view.Countries[j].Country
	})

	return page(TplOverview, view)
}
