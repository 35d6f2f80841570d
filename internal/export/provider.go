// Package export exposes label output through named providers. Vendor
// providers produce the generic files and add printing guidance for the
// vendor's own app.
package export

import (
	"context"
	"sort"
	"strings"

	"github.com/guttosm/move-labels/internal/render"
)

// Provider names.
const (
	NamePDF        = "pdf"
	NamePNG        = "png"
	NameCSV        = "csv"
	NameSupvan     = "supvan"
	NameFlashLabel = "flashlabel"
)

// Provider produces export files for a set of boxes.
type Provider interface {
	Name() string
	ExportPDF(ctx context.Context, req render.Request) ([]byte, error)
	// ExportPNG returns a PNG, or a ZIP of PNGs, plus its content type.
	ExportPNG(ctx context.Context, req render.Request) ([]byte, string, error)
	ExportCSV(boxes []render.Box, baseURL string) []byte
	Guidance() string
}

type generic struct {
	name string
}

func (g generic) Name() string { return g.name }

func (generic) ExportPDF(ctx context.Context, req render.Request) ([]byte, error) {
	return render.PDF(ctx, req)
}

func (generic) ExportPNG(ctx context.Context, req render.Request) ([]byte, string, error) {
	return render.PNG(ctx, req)
}

func (generic) ExportCSV(boxes []render.Box, baseURL string) []byte {
	return render.CSV(boxes, baseURL)
}

func (generic) Guidance() string { return "" }

// vendor delegates every format to the generic renderers.
type vendor struct {
	generic
	guidance string
}

func (v vendor) Guidance() string { return v.guidance }

// Registry resolves providers by name.
type Registry struct {
	providers map[string]Provider
	fallback  Provider
}

// NewRegistry returns a registry with the built-in providers plus extra ones.
// Extra providers replace built-ins with the same name.
func NewRegistry(extra ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider)}
	for _, p := range []Provider{
		generic{name: NamePDF},
		generic{name: NamePNG},
		generic{name: NameCSV},
		vendor{
			generic:  generic{name: NameSupvan},
			guidance: "Use Supvan app: import generated PDF/PNG, verify dimensions and print from mobile print queue.",
		},
		vendor{
			generic:  generic{name: NameFlashLabel},
			guidance: "Use FlashLabel app import workflow for PDF/PNG; CSV can be used for tabular import.",
		},
	} {
		r.providers[p.Name()] = p
	}
	for _, p := range extra {
		r.providers[p.Name()] = p
	}
	r.fallback = r.providers[NamePDF]
	return r
}

// Get returns the named provider. Unknown or empty names resolve to the
// generic provider; the second result reports whether the name was known.
func (r *Registry) Get(name string) (Provider, bool) {
	if p, ok := r.providers[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p, true
	}
	return r.fallback, false
}

// Info describes a provider for listings.
type Info struct {
	Name     string `json:"name"`
	Guidance string `json:"guidance"`
}

// List returns every provider sorted by name.
func (r *Registry) List() []Info {
	out := make([]Info, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, Info{Name: p.Name(), Guidance: p.Guidance()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
