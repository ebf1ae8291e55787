package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"patternmap/internal/domain"
	"patternmap/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// ErrEmptyCatalog is returned when loading a store nothing was imported into
var ErrEmptyCatalog = errors.New("catalog is empty")

// Store implements ports.CatalogStore using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements CatalogStore
var _ ports.CatalogStore = (*Store)(nil)

// NewStore creates a new SQLite catalog store
func NewStore() *Store {
	return &Store{}
}

// DefaultPath returns the catalog database location under the XDG data directory
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "patternmap", "catalog.db")
}

// Open initializes the store at path, creating the schema if needed
func (s *Store) Open(path string) error {
	// Expand ~ in path
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	s.dbPath = path

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS layers (
			position INTEGER PRIMARY KEY,
			key TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			color TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS patterns (
			position INTEGER PRIMARY KEY,
			short_id TEXT NOT NULL UNIQUE,
			id TEXT NOT NULL,
			label TEXT NOT NULL,
			layer TEXT NOT NULL,
			description TEXT NOT NULL,
			compute TEXT NOT NULL,
			state TEXT NOT NULL,
			safety_surface TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS pattern_lists (
			short_id TEXT NOT NULL,
			list TEXT NOT NULL,
			item INTEGER NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (short_id, list, item)
		);
		CREATE TABLE IF NOT EXISTS pattern_fields (
			short_id TEXT NOT NULL,
			field_key TEXT NOT NULL,
			shape TEXT NOT NULL,
			item INTEGER NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (short_id, field_key, item)
		);
		CREATE TABLE IF NOT EXISTS metrics (
			short_id TEXT PRIMARY KEY,
			pagerank REAL NOT NULL,
			weighted_out REAL NOT NULL,
			weighted_in REAL NOT NULL
		);
		CREATE TABLE IF NOT EXISTS links (
			position INTEGER PRIMARY KEY,
			source TEXT NOT NULL,
			target TEXT NOT NULL,
			weight REAL NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_links_source ON links(source);
		CREATE INDEX IF NOT EXISTS idx_links_target ON links(target);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file location
func (s *Store) Path() string { return s.dbPath }

// BeginTx starts a catalog transaction
func (s *Store) BeginTx() (ports.CatalogTx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	return &catalogTx{tx: tx}, nil
}

// Import replaces the stored catalog with data
func (s *Store) Import(ctx context.Context, data *domain.Dataset, source string) (*ports.CatalogInfo, error) {
	tx, err := s.BeginTx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := tx.Reset(); err != nil {
		return nil, fmt.Errorf("failed to clear catalog: %w", err)
	}
	for i, l := range data.Layers {
		if err := tx.InsertLayer(i, l); err != nil {
			return nil, fmt.Errorf("failed to insert layer %s: %w", l.Key, err)
		}
	}
	for i := range data.Patterns {
		p := &data.Patterns[i]
		if err := tx.InsertPattern(i, p, data.Metrics[p.ShortID]); err != nil {
			return nil, fmt.Errorf("failed to insert pattern %s: %w", p.ShortID, err)
		}
	}
	for i, l := range data.Links {
		if err := tx.InsertLink(i, l); err != nil {
			return nil, fmt.Errorf("failed to insert link %d: %w", i, err)
		}
	}

	importedAt := time.Now().UTC().Truncate(time.Second)
	meta := map[string]string{
		"schema_version": schemaVersion,
		"source":         source,
		"imported_at":    importedAt.Format(time.RFC3339),
	}
	for k, v := range meta {
		if err := tx.SetMeta(k, v); err != nil {
			return nil, fmt.Errorf("failed to update metadata: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}

	return &ports.CatalogInfo{
		Path:       s.dbPath,
		Source:     source,
		ImportedAt: importedAt,
		Patterns:   len(data.Patterns),
		Links:      len(data.Links),
		Layers:     len(data.Layers),
	}, nil
}

// Info reports the stored catalog's provenance and size
func (s *Store) Info(ctx context.Context) (*ports.CatalogInfo, error) {
	info := &ports.CatalogInfo{Path: s.dbPath}

	info.Source, _ = s.meta(ctx, "source")
	if at, ok := s.meta(ctx, "imported_at"); ok {
		if t, err := time.Parse(time.RFC3339, at); err == nil {
			info.ImportedAt = t
		}
	}

	counts := []struct {
		table string
		dst   *int
	}{
		{"patterns", &info.Patterns},
		{"links", &info.Links},
		{"layers", &info.Layers},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}
	return info, nil
}

func (s *Store) meta(ctx context.Context, key string) (string, bool) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	return value, err == nil
}

// Load reads the stored catalog back into a validated dataset
func (s *Store) Load(ctx context.Context) (*domain.Dataset, error) {
	if version, ok := s.meta(ctx, "schema_version"); !ok {
		return nil, fmt.Errorf("%s: %w", s.dbPath, ErrEmptyCatalog)
	} else if version != schemaVersion {
		return nil, fmt.Errorf("%s: schema version %s, want %s", s.dbPath, version, schemaVersion)
	}

	layers, err := s.loadLayers(ctx)
	if err != nil {
		return nil, err
	}
	patterns, err := s.loadPatterns(ctx)
	if err != nil {
		return nil, err
	}
	metrics, err := s.loadMetrics(ctx)
	if err != nil {
		return nil, err
	}
	links, err := s.loadLinks(ctx)
	if err != nil {
		return nil, err
	}

	return domain.NewDataset(patterns, links, metrics, layers)
}

func (s *Store) loadLayers(ctx context.Context) ([]domain.Layer, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, name, color FROM layers ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query layers: %w", err)
	}
	defer rows.Close()

	var layers []domain.Layer
	for rows.Next() {
		var l domain.Layer
		if err := rows.Scan(&l.Key, &l.Name, &l.Color); err != nil {
			return nil, err
		}
		layers = append(layers, l)
	}
	return layers, rows.Err()
}

func (s *Store) loadPatterns(ctx context.Context) ([]domain.Pattern, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT short_id, id, label, layer, description, compute, state, safety_surface
		FROM patterns ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query patterns: %w", err)
	}
	defer rows.Close()

	var patterns []domain.Pattern
	byID := make(map[string]int)
	for rows.Next() {
		var p domain.Pattern
		if err := rows.Scan(&p.ShortID, &p.ID, &p.Label, &p.Layer, &p.Description, &p.Compute, &p.State, &p.SafetySurface); err != nil {
			return nil, err
		}
		byID[p.ShortID] = len(patterns)
		patterns = append(patterns, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.loadLists(ctx, patterns, byID); err != nil {
		return nil, err
	}
	if err := s.loadFields(ctx, patterns, byID); err != nil {
		return nil, err
	}
	return patterns, nil
}

func (s *Store) loadLists(ctx context.Context, patterns []domain.Pattern, byID map[string]int) error {
	rows, err := s.db.QueryContext(ctx, `SELECT short_id, list, value FROM pattern_lists ORDER BY short_id, list, item`)
	if err != nil {
		return fmt.Errorf("failed to query pattern lists: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, list, value string
		if err := rows.Scan(&id, &list, &value); err != nil {
			return err
		}
		i, ok := byID[id]
		if !ok {
			return &domain.IntegrityError{Subject: "pattern_lists", Reason: "unknown pattern " + id}
		}
		p := &patterns[i]
		switch list {
		case listAliases:
			p.Aliases = append(p.Aliases, value)
		case listPros:
			p.Pros = append(p.Pros, value)
		case listCons:
			p.Cons = append(p.Cons, value)
		}
	}
	return rows.Err()
}

func (s *Store) loadFields(ctx context.Context, patterns []domain.Pattern, byID map[string]int) error {
	rows, err := s.db.QueryContext(ctx, `SELECT short_id, field_key, shape, value FROM pattern_fields ORDER BY short_id, field_key, item`)
	if err != nil {
		return fmt.Errorf("failed to query pattern fields: %w", err)
	}
	defer rows.Close()

	fields := make(map[string]map[domain.FieldKey]*domain.Field)
	for rows.Next() {
		var id, name, shape, value string
		if err := rows.Scan(&id, &name, &shape, &value); err != nil {
			return err
		}
		key, ok := domain.ParseFieldKey(name)
		if !ok {
			return &domain.IntegrityError{Subject: "pattern " + id, Reason: "unknown field " + name}
		}
		if fields[id] == nil {
			fields[id] = make(map[domain.FieldKey]*domain.Field)
		}
		f := fields[id][key]
		if f == nil {
			f = &domain.Field{Key: key}
			if shape == domain.ShapeList.String() {
				f.Shape = domain.ShapeList
			}
			fields[id][key] = f
		}
		if f.Shape == domain.ShapeList {
			f.Items = append(f.Items, value)
		} else {
			f.Text = value
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for id, byKey := range fields {
		i, ok := byID[id]
		if !ok {
			return &domain.IntegrityError{Subject: "pattern_fields", Reason: "unknown pattern " + id}
		}
		for _, key := range domain.FieldKeys() {
			if f, ok := byKey[key]; ok {
				patterns[i].Fields = append(patterns[i].Fields, *f)
			}
		}
	}
	return nil
}

func (s *Store) loadMetrics(ctx context.Context) (map[string]domain.Metrics, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT short_id, pagerank, weighted_out, weighted_in FROM metrics`)
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics: %w", err)
	}
	defer rows.Close()

	metrics := make(map[string]domain.Metrics)
	for rows.Next() {
		var id string
		var m domain.Metrics
		if err := rows.Scan(&id, &m.PageRank, &m.WeightedOut, &m.WeightedIn); err != nil {
			return nil, err
		}
		metrics[id] = m
	}
	return metrics, rows.Err()
}

func (s *Store) loadLinks(ctx context.Context) ([]domain.Link, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT source, target, weight FROM links ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	var links []domain.Link
	for rows.Next() {
		var l domain.Link
		if err := rows.Scan(&l.Source, &l.Target, &l.Weight); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

// Source reads a dataset from a catalog database file
type Source struct {
	path string
}

// NewSource creates a dataset source for a catalog database
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Describe returns the database path
func (s *Source) Describe() string { return "sqlite:" + s.path }

// Load opens the store, reads the catalog and closes it again
func (s *Source) Load(ctx context.Context) (*domain.Dataset, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	store := NewStore()
	if err := store.Open(s.path); err != nil {
		return nil, err
	}
	defer store.Close()

	return store.Load(ctx)
}
