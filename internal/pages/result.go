package pages

import (
	"net/http"
	"net/url"
)

const (
	RouteOverview    = "/friends/overview"
	RouteDetails     = "/friends/details"
	RouteEditFriend  = "/friends/edit"
	RouteEditAddress = "/addresses/edit"
	RouteViewFriend  = "/friends/view"
)

// DetailsRoute arma /friends/details/{id}.
func DetailsRoute(friendID string) string {
	return RouteDetails + "/" + url.PathEscape(friendID)
}

// Result es lo que devuelve cada paso de un workflow: o se renderiza una página
// o se redirige. Nunca ambas.
type Result struct {
	Template   string
	View       any
	Status     int
	RedirectTo string
}

func (r Result) IsRedirect() bool { return r.RedirectTo != "" }

func page(tpl string, view any) Result {
	return Result{Template: tpl, View: view, Status: http.StatusOK}
}

func pageWithStatus(status int, tpl string, view any) Result {
	return Result{Template: tpl, View: view, Status: status}
}

func redirect(to string) Result {
	return Result{RedirectTo: to}
}

func redirectToOverview() Result {
	return redirect(RouteOverview)
}

// ErrorView alimenta la página genérica de error.
type ErrorView struct {
	Title   string
	Message string
}

func errorPage(status int, msg string) Result {
	return pageWithStatus(status, TplError, ErrorView{
		Title:   http.StatusText(status),
		Message: msg,
	})
}
