package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"storefront/internal/core"
	"storefront/pkg/units"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*.js
var staticFS embed.FS

const (
	PageStorefront = "storefront.html"
	PageItem       = "item.html"
	PageSeller     = "seller.html"
	PagePurchases  = "purchases.html"
	PageError      = "error.html"
)

// PageData is what every page template renders from. Wallet is nil until a
// wallet is connected.
type PageData struct {
	Title   string
	Network string
	ChainID int64
	Wallet  *core.WalletStatus
	Message string

	Items     []core.ItemView
	Details   *core.ItemDetails
	Dashboard *core.SellerDashboard
	History   *core.PurchaseHistory
}

var funcs = template.FuncMap{
	"eth": units.EnsureEthSuffix,
}

// Templates holds one parsed set per page, each sharing the layout.
type Templates struct {
	pages map[string]*template.Template
}

func NewTemplates() (*Templates, error) {
	names := []string{PageStorefront, PageItem, PageSeller, PagePurchases, PageError}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Templates{
		pages: pages,
	}, nil
}

// Render executes the page into a buffer first so a failing template never
// leaves a half written response.
func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute template %s: %w", page, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

// Static serves the browser scripts under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
