package hclfile

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"patternmap/internal/domain"
)

// Encode writes the dataset in the layout Decode reads
func Encode(w io.Writer, d *domain.Dataset) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	for _, l := range d.Layers {
		body := root.AppendNewBlock("layer", []string{l.Key}).Body()
		body.SetAttributeValue("name", cty.StringVal(l.Name))
		if l.Color != "" {
			body.SetAttributeValue("color", cty.StringVal(l.Color))
		}
		root.AppendNewline()
	}

	for i := range d.Patterns {
		p := &d.Patterns[i]
		body := root.AppendNewBlock("pattern", []string{p.ShortID}).Body()
		setString(body, "id", p.ID)
		setString(body, "label", p.Label)
		setString(body, "layer", p.Layer)
		setString(body, "description", p.Description)
		setString(body, "compute", p.Compute)
		setString(body, "state", p.State)
		setString(body, "safety_surface", p.SafetySurface)
		setList(body, "aliases", p.Aliases)
		setList(body, "pros", p.Pros)
		setList(body, "cons", p.Cons)
		for _, field := range p.Fields {
			if field.Shape == domain.ShapeList {
				setList(body, field.Key.String(), field.Items)
			} else {
				setString(body, field.Key.String(), field.Text)
			}
		}

		m := d.Metrics[p.ShortID]
		body.AppendNewline()
		mb := body.AppendNewBlock("metrics", nil).Body()
		mb.SetAttributeValue("pagerank", cty.NumberFloatVal(m.PageRank))
		mb.SetAttributeValue("weighted_out", cty.NumberFloatVal(m.WeightedOut))
		mb.SetAttributeValue("weighted_in", cty.NumberFloatVal(m.WeightedIn))
		root.AppendNewline()
	}

	for _, l := range d.Links {
		body := root.AppendNewBlock("link", nil).Body()
		body.SetAttributeValue("source", cty.StringVal(l.Source))
		body.SetAttributeValue("target", cty.StringVal(l.Target))
		body.SetAttributeValue("weight", cty.NumberFloatVal(l.Weight))
		root.AppendNewline()
	}

	_, err := w.Write(f.Bytes())
	return err
}

func setString(body *hclwrite.Body, name, value string) {
	if value != "" {
		body.SetAttributeValue(name, cty.StringVal(value))
	}
}

func setList(body *hclwrite.Body, name string, items []string) {
	if len(items) == 0 {
		return
	}
	vals := make([]cty.Value, len(items))
	for i, s := range items {
		vals[i] = cty.StringVal(s)
	}
	body.SetAttributeValue(name, cty.ListVal(vals))
}
