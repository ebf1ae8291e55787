package htmlview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"patternmap/internal/application"
	"patternmap/internal/domain"
	"patternmap/internal/ports"
)

const defaultTitle = "Pattern Map"

// Renderer implements ports.PageRenderer with an embedded D3 force layout
type Renderer struct {
	page   *template.Template
	detail *template.Template
}

// Ensure Renderer implements PageRenderer
var _ ports.PageRenderer = (*Renderer)(nil)

// NewRenderer parses the page and detail templates
func NewRenderer() *Renderer {
	return &Renderer{
		page:   template.Must(template.New("page").Parse(pageTemplate)),
		detail: template.Must(template.New("detail").Parse(detailTemplate)),
	}
}

type pageConfig struct {
	APIBase          string     `json:"apiBase"`
	SearchDebounceMS int64      `json:"searchDebounceMs"`
	ResizeDebounceMS int64      `json:"resizeDebounceMs"`
	EmptyText        string     `json:"emptyText"`
	Initial          string     `json:"initial,omitempty"`
	Simulation       simulation `json:"simulation"`
}

type simulation struct {
	CollisionPadding  float64 `json:"collisionPadding"`
	CollisionStrength float64 `json:"collisionStrength"`
	AlphaDecay        float64 `json:"alphaDecay"`
	MaxTicks          int     `json:"maxTicks"`
	ChargeStrength    float64 `json:"chargeStrength"`
	ChargeDistanceMax float64 `json:"chargeDistanceMax"`
}

// Render writes a self-contained page for the engine's current view.
//
// With opts.APIBase set the page asks the server for every view change.
// Without it the page works offline: selection flags are precomputed per
// pattern and the page applies layer filters and search itself, starting
// from the engine's current state.
func (r *Renderer) Render(w io.Writer, e *domain.Engine, opts ports.PageOptions) error {
	if opts.Title == "" {
		opts.Title = defaultTitle
	}

	cfg := pageConfig{
		APIBase:          opts.APIBase,
		SearchDebounceMS: opts.SearchDebounce.Milliseconds(),
		ResizeDebounceMS: opts.ResizeDebounce.Milliseconds(),
		EmptyText:        application.EmptyDetailText,
		Simulation: simulation{
			CollisionPadding:  opts.Simulation.CollisionPadding,
			CollisionStrength: opts.Simulation.CollisionStrength,
			AlphaDecay:        opts.Simulation.AlphaDecay,
			MaxTicks:          opts.Simulation.MaxTicks,
			ChargeStrength:    opts.Simulation.ChargeStrength,
			ChargeDistanceMax: opts.Simulation.ChargeDistanceMax,
		},
	}

	g := NewGraph(e.Dataset())
	if opts.APIBase != "" {
		view, err := r.ViewWithDetail(e)
		if err != nil {
			return err
		}
		g.Base = view
	} else {
		if err := r.precompute(g, e); err != nil {
			return err
		}
		g.attachSearchTerms(e.Dataset())
		cfg.Initial, _ = e.Selected()
	}

	graphJSON, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encoding graph: %w", err)
	}
	configJSON, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	data := struct {
		Title      string
		GraphJSON  template.JS
		ConfigJSON template.JS
	}{
		Title:      opts.Title,
		GraphJSON:  template.JS(graphJSON),
		ConfigJSON: template.JS(configJSON),
	}
	return r.page.Execute(w, data)
}

// precompute fills the static views: the unselected base with e's filters,
// and one unfiltered selection view per pattern. Selection flags do not
// depend on visibility, so the page overlays its own filters on them.
func (r *Renderer) precompute(g *Graph, e *domain.Engine) error {
	g.Base = NewView(replay(e))
	g.Selections = make(map[string]*View, len(e.Dataset().Patterns))
	g.Details = make(map[string]string, len(e.Dataset().Patterns))

	for _, p := range e.Dataset().Patterns {
		sel := domain.NewEngine(e.Dataset(), e.Index())
		if err := sel.Select(p.ShortID); err != nil {
			return err
		}
		g.Selections[p.ShortID] = NewView(sel)

		html, err := r.detailFor(sel, p.ShortID)
		if err != nil {
			return err
		}
		g.Details[p.ShortID] = html
	}
	return nil
}

// replay builds a fresh engine with e's layer filters and query but no selection
func replay(e *domain.Engine) *domain.Engine {
	c := domain.NewEngine(e.Dataset(), e.Index())
	// Layers already passed validation on e
	_ = c.SetLayerFilters(e.ActiveLayers())
	c.SetSearchQuery(e.Query())
	return c
}

// ViewWithDetail snapshots the engine and renders the selected pattern's detail
func (r *Renderer) ViewWithDetail(e *domain.Engine) (*View, error) {
	v := NewView(e)
	if id, ok := e.Selected(); ok {
		html, err := r.detailFor(e, id)
		if err != nil {
			return nil, err
		}
		v.Detail = html
	}
	return v, nil
}

func (r *Renderer) detailFor(e *domain.Engine, id string) (string, error) {
	d, err := application.BuildDetail(e, id)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := r.RenderDetail(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderDetail writes the detail panel fragment for one pattern
func (r *Renderer) RenderDetail(w io.Writer, d *application.Detail) error {
	return r.detail.Execute(w, d)
}
