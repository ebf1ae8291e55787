// Package hclfile reads and writes pattern catalogs as HCL:
//
//	layer "orchestration" {
//	  name  = "Orchestration"
//	  color = "#7C3AED"
//	}
//
//	pattern "RT" {
//	  id        = "routing"
//	  label     = "Routing"
//	  layer     = "orchestration"
//	  aliases   = ["Smart Routing"]
//	  use_cases = ["Support triage"]
//
//	  metrics {
//	    pagerank     = 0.07
//	    weighted_out = 2.1
//	    weighted_in  = 1.4
//	  }
//	}
//
//	link {
//	  source = "RT"
//	  target = "GR"
//	  weight = 0.4
//	}
//
// Every pattern needs a metrics block. Optional free-form fields are plain
// attributes; a string is text and a list of strings is a list. Any other
// attribute or block inside a pattern is rejected.
package hclfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"patternmap/internal/domain"
)

type hclCatalog struct {
	Layers   []*hclLayer   `hcl:"layer,block"`
	Patterns []*hclPattern `hcl:"pattern,block"`
	Links    []*hclLink    `hcl:"link,block"`
}

type hclLayer struct {
	Key   string `hcl:"key,label"`
	Name  string `hcl:"name,optional"`
	Color string `hcl:"color,optional"`
}

type hclPattern struct {
	ShortID       string      `hcl:"short_id,label"`
	ID            string      `hcl:"id,optional"`
	Label         string      `hcl:"label,optional"`
	Layer         string      `hcl:"layer,optional"`
	Description   string      `hcl:"description,optional"`
	Compute       string      `hcl:"compute,optional"`
	State         string      `hcl:"state,optional"`
	SafetySurface string      `hcl:"safety_surface,optional"`
	Aliases       []string    `hcl:"aliases,optional"`
	Pros          []string    `hcl:"pros,optional"`
	Cons          []string    `hcl:"cons,optional"`
	Metrics       *hclMetrics `hcl:"metrics,block"`
	Remain        hcl.Body    `hcl:",remain"`
}

type hclMetrics struct {
	PageRank    float64 `hcl:"pagerank"`
	WeightedOut float64 `hcl:"weighted_out"`
	WeightedIn  float64 `hcl:"weighted_in"`
}

type hclLink struct {
	Source string  `hcl:"source"`
	Target string  `hcl:"target"`
	Weight float64 `hcl:"weight"`
}

// fieldSchema lists the optional free-form attributes a pattern may carry
var fieldSchema = func() *hcl.BodySchema {
	keys := domain.FieldKeys()
	schema := &hcl.BodySchema{Attributes: make([]hcl.AttributeSchema, 0, len(keys))}
	for _, key := range keys {
		schema.Attributes = append(schema.Attributes, hcl.AttributeSchema{Name: key.String()})
	}
	return schema
}()

// Decode parses an HCL catalog. filename is used in diagnostics only.
func Decode(src []byte, filename string) (*domain.Dataset, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclCatalog
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	layers := make([]domain.Layer, 0, len(parsed.Layers))
	for _, l := range parsed.Layers {
		layers = append(layers, domain.Layer{Key: l.Key, Name: l.Name, Color: l.Color})
	}

	patterns := make([]domain.Pattern, 0, len(parsed.Patterns))
	metrics := make(map[string]domain.Metrics, len(parsed.Patterns))
	for _, hp := range parsed.Patterns {
		p, err := newPatternFromHCL(hp)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		patterns = append(patterns, p)
		if hp.Metrics != nil {
			metrics[hp.ShortID] = domain.Metrics{
				PageRank:    hp.Metrics.PageRank,
				WeightedOut: hp.Metrics.WeightedOut,
				WeightedIn:  hp.Metrics.WeightedIn,
			}
		}
	}

	links := make([]domain.Link, 0, len(parsed.Links))
	for _, l := range parsed.Links {
		links = append(links, domain.Link{Source: l.Source, Target: l.Target, Weight: l.Weight})
	}

	return domain.NewDataset(patterns, links, metrics, layers)
}

func newPatternFromHCL(hp *hclPattern) (domain.Pattern, error) {
	p := domain.Pattern{
		ShortID:       hp.ShortID,
		ID:            hp.ID,
		Label:         hp.Label,
		Layer:         hp.Layer,
		Description:   hp.Description,
		Compute:       hp.Compute,
		State:         hp.State,
		SafetySurface: hp.SafetySurface,
		Aliases:       hp.Aliases,
		Pros:          hp.Pros,
		Cons:          hp.Cons,
	}
	if hp.Remain == nil {
		return p, nil
	}

	// Content skips the blocks and attributes gohcl already decoded and
	// reports anything that is neither one of those nor a free-form field.
	content, diags := hp.Remain.Content(fieldSchema)
	if diags.HasErrors() {
		return p, &domain.IntegrityError{Subject: "pattern " + hp.ShortID, Reason: diags.Error()}
	}

	byKey := make(map[domain.FieldKey]domain.Field, len(content.Attributes))
	for name, attr := range content.Attributes {
		key, _ := domain.ParseFieldKey(name)
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return p, fmt.Errorf("pattern %s: %w", hp.ShortID, diags)
		}
		f, present, err := fieldFromCty(key, val)
		if err != nil {
			return p, &domain.IntegrityError{Subject: "pattern " + hp.ShortID, Reason: err.Error()}
		}
		if present {
			byKey[key] = f
		}
	}
	// Attributes come back as a map; keep the fixed field order
	for _, key := range domain.FieldKeys() {
		if f, ok := byKey[key]; ok {
			p.Fields = append(p.Fields, f)
		}
	}
	return p, nil
}

// fieldFromCty tags the shape of a free-form field from its cty type
func fieldFromCty(key domain.FieldKey, v cty.Value) (domain.Field, bool, error) {
	if v.IsNull() || !v.IsKnown() {
		return domain.Field{}, false, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		s := v.AsString()
		return domain.TextField(key, s), s != "", nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		items := make([]string, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, el := it.Element()
			if el.IsNull() || el.Type() != cty.String {
				return domain.Field{}, false, fmt.Errorf("%s: list entries must be strings", key)
			}
			items = append(items, el.AsString())
		}
		return domain.ListField(key, items), len(items) > 0, nil

	default:
		return domain.Field{}, false, fmt.Errorf("%s: expected text or list, got %s", key, ty.FriendlyName())
	}
}
