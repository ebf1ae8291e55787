// Package jsonfile reads pattern catalogs in the JSON layout the browser
// page was first built around: layerNames, layerColors, nodes, links, metrics.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"patternmap/internal/domain"
)

type rawDataset struct {
	LayerNames  json.RawMessage           `json:"layerNames"`
	LayerColors map[string]string         `json:"layerColors"`
	Nodes       []json.RawMessage         `json:"nodes"`
	Links       []rawLink                 `json:"links"`
	Metrics     map[string]domain.Metrics `json:"metrics"`
}

type rawNode struct {
	ShortID       string   `json:"short_id"`
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	Layer         string   `json:"layer"`
	Description   string   `json:"description"`
	Compute       string   `json:"compute"`
	State         string   `json:"state"`
	SafetySurface string   `json:"safety_surface"`
	Aliases       []string `json:"aliases"`
	Pros          []string `json:"pros"`
	Cons          []string `json:"cons"`
}

type rawLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Decode reads and validates a catalog
func Decode(r io.Reader) (*domain.Dataset, error) {
	var raw rawDataset
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	layers, err := decodeLayers(raw.LayerNames, raw.LayerColors)
	if err != nil {
		return nil, err
	}

	patterns := make([]domain.Pattern, 0, len(raw.Nodes))
	for i, msg := range raw.Nodes {
		p, err := decodeNode(msg)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		patterns = append(patterns, p)
	}

	links := make([]domain.Link, len(raw.Links))
	for i, l := range raw.Links {
		links[i] = domain.Link{Source: l.Source, Target: l.Target, Weight: l.Weight}
	}

	return domain.NewDataset(patterns, links, raw.Metrics, layers)
}

func decodeNode(msg json.RawMessage) (domain.Pattern, error) {
	var n rawNode
	if err := json.Unmarshal(msg, &n); err != nil {
		return domain.Pattern{}, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(msg, &all); err != nil {
		return domain.Pattern{}, err
	}

	p := domain.Pattern{
		ShortID:       n.ShortID,
		ID:            n.ID,
		Label:         n.Label,
		Layer:         n.Layer,
		Description:   n.Description,
		Compute:       n.Compute,
		State:         n.State,
		SafetySurface: n.SafetySurface,
		Aliases:       n.Aliases,
		Pros:          n.Pros,
		Cons:          n.Cons,
	}
	for _, key := range domain.FieldKeys() {
		v, ok := all[key.String()]
		if !ok {
			continue
		}
		f, present, err := decodeField(key, v)
		if err != nil {
			return domain.Pattern{}, &domain.IntegrityError{Subject: "pattern " + n.ShortID, Reason: err.Error()}
		}
		if present {
			p.Fields = append(p.Fields, f)
		}
	}
	return p, nil
}

// decodeField tags the shape of a free-form field from its JSON kind
func decodeField(key domain.FieldKey, v json.RawMessage) (domain.Field, bool, error) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return domain.Field{}, false, nil
	}
	switch v[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return domain.Field{}, false, err
		}
		return domain.TextField(key, s), s != "", nil
	case '[':
		var items []string
		if err := json.Unmarshal(v, &items); err != nil {
			return domain.Field{}, false, fmt.Errorf("%s: list entries must be strings", key)
		}
		return domain.ListField(key, items), len(items) > 0, nil
	default:
		return domain.Field{}, false, fmt.Errorf("%s: expected text or list", key)
	}
}

// decodeLayers walks layerNames token by token so the legend keeps file order
func decodeLayers(names json.RawMessage, colors map[string]string) ([]domain.Layer, error) {
	if len(bytes.TrimSpace(names)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(names))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("layerNames: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("layerNames: expected object")
	}

	var layers []domain.Layer
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("layerNames: %w", err)
		}
		key, _ := tok.(string)
		var name string
		if err := dec.Decode(&name); err != nil {
			return nil, fmt.Errorf("layerNames.%s: %w", key, err)
		}
		layers = append(layers, domain.Layer{Key: key, Name: name, Color: colors[key]})
	}
	return layers, nil
}
