package pages

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"friends-directory/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

type Deps struct {
	Friends   FriendsService
	Addresses AddressesService
	Pets      PetsService
	Quotes    QuotesService
	Renderer  *Renderer
	Logger    logger.Logger
}

type Handler struct {
	renderer *Renderer
	log      logger.Logger

	overview    *Overview
	detail      *FriendDetail
	friendEdit  *FriendEdit
	addressEdit *AddressEdit
	viewFriend  *ViewFriend
}

func NewHandler(d Deps) *Handler {
	log := d.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		renderer:    d.Renderer,
		log:         log,
		overview:    NewOverview(d.Friends, log),
		detail:      NewFriendDetail(d.Friends, d.Pets, d.Quotes, log),
		friendEdit:  NewFriendEdit(d.Friends, log),
		addressEdit: NewAddressEdit(d.Addresses, d.Friends, log),
		viewFriend:  NewViewFriend(d.Friends, log),
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, RouteOverview, http.StatusFound)
	})

	r.Get(RouteOverview, h.Overview)
	r.Get(RouteViewFriend, h.ViewFriend)

	r.Route(RouteDetails, func(r chi.Router) {
		r.Post("/delete-pet", h.DeletePet)
		r.Post("/delete-quote", h.DeleteQuote)
		r.Get("/{id}", h.Details)
	})

	r.Route(RouteEditFriend, func(r chi.Router) {
		r.Get("/", h.EditFriend)
		r.Post("/", h.SaveFriend)
		r.Get("/{id}", h.EditFriend)
		r.Post("/{id}", h.SaveFriend)
	})

	r.Route(RouteEditAddress, func(r chi.Router) {
		r.Get("/", h.EditAddress)
		r.Post("/", h.SaveAddress)
		r.Get("/{id}", h.EditAddress)
		r.Post("/{id}", h.SaveAddress)
	})
}

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.overview.Load(r.Context(), boolQuery(r, "useSeeds", true)))
}

func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.detail.Load(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handler) DeletePet(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	h.respond(w, r, h.detail.DeletePet(r.Context(), r.PostFormValue("petId"), r.PostFormValue("friendId")))
}

func (h *Handler) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	h.respond(w, r, h.detail.DeleteQuote(r.Context(), r.PostFormValue("quoteId"), r.PostFormValue("friendId")))
}

func (h *Handler) EditFriend(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.friendEdit.Load(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handler) SaveFriend(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	form := FriendForm{
		FriendID:  firstNonEmpty(r.PostFormValue("FriendId"), chi.URLParam(r, "id")),
		FirstName: r.PostFormValue("FirstName"),
		LastName:  r.PostFormValue("LastName"),
		Email:     r.PostFormValue("Email"),
		Birthday:  r.PostFormValue("Birthday"),
		AddressID: r.PostFormValue("AddressId"),
	}
	h.respond(w, r, h.friendEdit.Save(r.Context(), form))
}

func (h *Handler) EditAddress(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.addressEdit.Load(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("friendId")))
}

func (h *Handler) SaveAddress(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	form := AddressForm{
		AddressID:     firstNonEmpty(r.PostFormValue("AddressId"), chi.URLParam(r, "id")),
		StreetAddress: r.PostFormValue("StreetAddress"),
		ZipCode:       r.PostFormValue("ZipCode"),
		City:          r.PostFormValue("City"),
		Country:       r.PostFormValue("Country"),
		FriendID:      firstNonEmpty(r.PostFormValue("FriendId"), r.URL.Query().Get("friendId")),
	}
	h.respond(w, r, h.addressEdit.Save(r.Context(), form))
}

func (h *Handler) ViewFriend(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.viewFriend.Load(r.Context(), r.URL.Query().Get("id")))
}

func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		h.log.Warn("invalid form body", map[string]any{"path": r.URL.Path, "error": err.Error()})
		h.respond(w, r, errorPage(http.StatusBadRequest, "The submitted form could not be read."))
		return false
	}
	return true
}

// respond aplica el Result: redirect (303 después de un POST) o render con su status.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, res Result) {
	if res.IsRedirect() {
		status := http.StatusFound
		if r.Method == http.MethodPost {
			status = http.StatusSeeOther
		}
		http.Redirect(w, r, res.RedirectTo, status)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, res.Template, res.View); err != nil {
		h.log.Error("render failed", map[string]any{"template": res.Template, "error": err.Error()})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	status := res.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func boolQuery(r *http.Request, key string, def bool) bool {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
