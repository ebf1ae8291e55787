package domain

import (
	"fmt"
	"strings"
)

// Dataset is the validated, read-only pattern catalog
type Dataset struct {
	Patterns []Pattern
	Links    []Link
	Metrics  map[string]Metrics
	Layers   []Layer // Legend order

	byID     map[string]int
	byLayer  map[string]int
	observed map[string]bool
}

// NewDataset validates the raw catalog and derives node radii.
// Layers referenced by patterns but absent from the layer table are appended
// in first-appearance order with their key as display name.
func NewDataset(patterns []Pattern, links []Link, metrics map[string]Metrics, layers []Layer) (*Dataset, error) {
	d := &Dataset{
		Patterns: make([]Pattern, len(patterns)),
		Links:    make([]Link, len(links)),
		Metrics:  make(map[string]Metrics, len(metrics)),
		byID:     make(map[string]int, len(patterns)),
		byLayer:  make(map[string]int, len(layers)),
		observed: make(map[string]bool),
	}
	copy(d.Patterns, patterns)
	copy(d.Links, links)
	for k, v := range metrics {
		d.Metrics[k] = v
	}

	for _, l := range layers {
		if strings.TrimSpace(l.Key) == "" {
			return nil, &IntegrityError{Subject: "layer table", Reason: "empty layer key"}
		}
		if _, dup := d.byLayer[l.Key]; dup {
			return nil, &IntegrityError{Subject: "layer " + l.Key, Reason: "duplicate layer key"}
		}
		d.byLayer[l.Key] = len(d.Layers)
		d.Layers = append(d.Layers, l)
	}

	for i := range d.Patterns {
		p := &d.Patterns[i]
		if strings.TrimSpace(p.ShortID) == "" {
			return nil, &IntegrityError{Subject: fmt.Sprintf("pattern %d", i), Reason: "empty short_id"}
		}
		if _, dup := d.byID[p.ShortID]; dup {
			return nil, &IntegrityError{Subject: "pattern " + p.ShortID, Reason: "duplicate short_id"}
		}
		d.byID[p.ShortID] = i

		m, ok := d.Metrics[p.ShortID]
		if !ok {
			return nil, &IntegrityError{Subject: "pattern " + p.ShortID, Reason: "missing metrics"}
		}
		p.Radius = RadiusFor(m.PageRank)

		d.observed[p.Layer] = true
		if _, known := d.byLayer[p.Layer]; !known {
			d.byLayer[p.Layer] = len(d.Layers)
			d.Layers = append(d.Layers, Layer{Key: p.Layer, Name: p.Layer})
		}
	}

	for i, l := range d.Links {
		subject := linkSubject(i, l)
		if _, ok := d.byID[l.Source]; !ok {
			return nil, &IntegrityError{Subject: subject, Reason: "unknown source " + l.Source}
		}
		if _, ok := d.byID[l.Target]; !ok {
			return nil, &IntegrityError{Subject: subject, Reason: "unknown target " + l.Target}
		}
		if !(l.Weight > 0) {
			return nil, &IntegrityError{Subject: subject, Reason: fmt.Sprintf("non-positive weight %v", l.Weight)}
		}
	}

	return d, nil
}

// Pattern returns the pattern with the given short id
func (d *Dataset) Pattern(id string) (*Pattern, error) {
	i, ok := d.byID[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return &d.Patterns[i], nil
}

// Index returns the position of a pattern in Patterns, or -1
func (d *Dataset) Index(id string) int {
	if i, ok := d.byID[id]; ok {
		return i
	}
	return -1
}

// Layer returns the layer table entry for a key
func (d *Dataset) Layer(key string) (Layer, bool) {
	i, ok := d.byLayer[key]
	if !ok {
		return Layer{}, false
	}
	return d.Layers[i], true
}

// LayerName returns the display name for a key, falling back to the key itself
func (d *Dataset) LayerName(key string) string {
	if l, ok := d.Layer(key); ok && l.Name != "" {
		return l.Name
	}
	return key
}

// HasLayer reports whether at least one pattern carries the layer key
func (d *Dataset) HasLayer(key string) bool {
	return d.observed[key]
}

// ObservedLayers returns the legend entries that at least one pattern carries
func (d *Dataset) ObservedLayers() []Layer {
	var layers []Layer
	for _, l := range d.Layers {
		if d.observed[l.Key] {
			layers = append(layers, l)
		}
	}
	return layers
}

// LayerCounts returns the number of patterns per layer key
func (d *Dataset) LayerCounts() map[string]int {
	counts := make(map[string]int, len(d.Layers))
	for _, p := range d.Patterns {
		counts[p.Layer]++
	}
	return counts
}
