package pages

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Renderer compila las plantillas embebidas una sola vez; después es de solo lectura.
type Renderer struct {
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	appName   string
}

func NewRenderer(appName string) (*Renderer, error) {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("pages: templates dir: %w", err)
	}

	r := &Renderer{
		set:       pongo2.NewSet("pages", pongo2.NewFSLoader(sub)),
		templates: make(map[string]*pongo2.Template),
		appName:   appName,
	}

	for _, name := range []string{TplOverview, TplDetails, TplEditFriend, TplEditAddress, TplViewFriend, TplError} {
		tpl, err := r.set.FromFile(name)
		if err != nil {
			return nil, fmt.Errorf("pages: load template %q: %w", name, err)
		}
		r.templates[name] = tpl
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, view any) error {
	tpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("pages: unknown template %q", name)
	}
	ctx := pongo2.Context{
		"app":  r.appName,
		"view": view,
	}
	if err := tpl.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("pages: execute template %q: %w", name, err)
	}
	return nil
}
