package sqlite

import (
	"database/sql"

	"patternmap/internal/domain"
	"patternmap/internal/ports"
)

// pattern_lists.list values
const (
	listAliases = "aliases"
	listPros    = "pros"
	listCons    = "cons"
)

// catalogTx implements ports.CatalogTx
type catalogTx struct {
	tx *sql.Tx
}

// Ensure catalogTx implements CatalogTx
var _ ports.CatalogTx = (*catalogTx)(nil)

// Reset removes every stored row
func (t *catalogTx) Reset() error {
	for _, table := range []string{"layers", "patterns", "pattern_lists", "pattern_fields", "metrics", "links", "meta"} {
		if _, err := t.tx.Exec(`DELETE FROM ` + table); err != nil {
			return err
		}
	}
	return nil
}

// InsertLayer adds a legend entry
func (t *catalogTx) InsertLayer(position int, layer domain.Layer) error {
	_, err := t.tx.Exec(`
		INSERT INTO layers (position, key, name, color)
		VALUES (?, ?, ?, ?)
	`, position, layer.Key, layer.Name, layer.Color)
	return err
}

// InsertPattern adds a pattern with its lists, fields and metrics
func (t *catalogTx) InsertPattern(position int, p *domain.Pattern, m domain.Metrics) error {
	_, err := t.tx.Exec(`
		INSERT INTO patterns (position, short_id, id, label, layer, description, compute, state, safety_surface)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, position, p.ShortID, p.ID, p.Label, p.Layer, p.Description, p.Compute, p.State, p.SafetySurface)
	if err != nil {
		return err
	}

	lists := []struct {
		name  string
		items []string
	}{
		{listAliases, p.Aliases},
		{listPros, p.Pros},
		{listCons, p.Cons},
	}
	for _, l := range lists {
		for i, v := range l.items {
			if _, err := t.tx.Exec(`
				INSERT INTO pattern_lists (short_id, list, item, value)
				VALUES (?, ?, ?, ?)
			`, p.ShortID, l.name, i, v); err != nil {
				return err
			}
		}
	}

	for _, f := range p.Fields {
		values := f.Items
		if f.Shape == domain.ShapeText {
			values = []string{f.Text}
		}
		for i, v := range values {
			if _, err := t.tx.Exec(`
				INSERT INTO pattern_fields (short_id, field_key, shape, item, value)
				VALUES (?, ?, ?, ?, ?)
			`, p.ShortID, f.Key.String(), f.Shape.String(), i, v); err != nil {
				return err
			}
		}
	}

	_, err = t.tx.Exec(`
		INSERT INTO metrics (short_id, pagerank, weighted_out, weighted_in)
		VALUES (?, ?, ?, ?)
	`, p.ShortID, m.PageRank, m.WeightedOut, m.WeightedIn)
	return err
}

// InsertLink adds a link at its dataset position
func (t *catalogTx) InsertLink(position int, link domain.Link) error {
	_, err := t.tx.Exec(`
		INSERT INTO links (position, source, target, weight)
		VALUES (?, ?, ?, ?)
	`, position, link.Source, link.Target, link.Weight)
	return err
}

// SetMeta sets a metadata value
func (t *catalogTx) SetMeta(key, value string) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

// Commit commits the transaction
func (t *catalogTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *catalogTx) Rollback() error {
	return t.tx.Rollback()
}
