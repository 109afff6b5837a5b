// CLAUDE:SUMMARY SQLite cache of built BrandDNA profiles, keyed by normalised URL with a TTL.
// Package dnastore caches built BrandDNA profiles so repeated extractions
// of the same site skip the fetch/vision pipeline. Entries expire by TTL;
// a stale or missing entry is a cache miss, never an error to the caller's
// pipeline.
package dnastore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hueloom/branddna/dbopen"
	"github.com/hueloom/branddna/dna"
)

// Schema creates the cache table. Applied via dbopen.WithSchema at open.
const Schema = `
CREATE TABLE IF NOT EXISTS brand_dna (
	url        TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	quality    REAL NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_brand_dna_created ON brand_dna(created_at);
`

// DefaultTTL is how long a cached profile stays fresh.
const DefaultTTL = 7 * 24 * time.Hour

// Store is the BrandDNA cache.
type Store struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// New wraps an opened database. A non-positive ttl falls back to
// DefaultTTL.
func New(db *sql.DB, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{db: db, ttl: ttl, now: time.Now}
}

// Open opens (creating if needed) the cache database at path.
func Open(path string, ttl time.Duration) (*Store, error) {
	db, err := dbopen.Open(path, dbopen.WithMkdirAll(), dbopen.WithSchema(Schema))
	if err != nil {
		return nil, fmt.Errorf("dnastore: %w", err)
	}
	return New(db, ttl), nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Get returns the cached profile for a URL, or ok=false on miss or expiry.
func (s *Store) Get(ctx context.Context, rawURL string) (*dna.BrandDNA, bool, error) {
	key := NormalizeURL(rawURL)

	var payload string
	var createdAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, created_at FROM brand_dna WHERE url = ?`, key,
	).Scan(&payload, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("dnastore: get: %w", err)
	}

	if s.now().Unix()-createdAt > int64(s.ttl.Seconds()) {
		return nil, false, nil
	}

	var d dna.BrandDNA
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		// A corrupt row is a miss; the next Put overwrites it.
		return nil, false, nil
	}
	return &d, true, nil
}

// Put stores or replaces the profile for a URL. The write runs inside a
// busy-retried transaction so a concurrent extraction cannot leave a
// half-replaced row.
func (s *Store) Put(ctx context.Context, rawURL string, d *dna.BrandDNA) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("dnastore: marshal: %w", err)
	}

	err = dbopen.RunTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO brand_dna (url, payload, quality, created_at) VALUES (?, ?, ?, ?)
			 ON CONFLICT(url) DO UPDATE SET payload = excluded.payload,
			   quality = excluded.quality, created_at = excluded.created_at`,
			NormalizeURL(rawURL), string(payload), d.Metadata.ExtractionQuality, s.now().Unix())
		return err
	})
	if err != nil {
		return fmt.Errorf("dnastore: put: %w", err)
	}
	return nil
}

// Purge deletes expired rows and returns how many were removed.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	cutoff := s.now().Unix() - int64(s.ttl.Seconds())
	res, err := dbopen.Exec(ctx, s.db, `DELETE FROM brand_dna WHERE created_at <= ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("dnastore: purge: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// NormalizeURL canonicalises a URL for use as a cache key: lowercased
// scheme and host, no fragment, no trailing slash, default https scheme
// for scheme-less input.
func NormalizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return strings.ToLower(strings.TrimRight(s, "/"))
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.Path = strings.TrimRight(u.Path, "/")
	return u.String()
}
