// cache.go implements the write/read/sweep/stats surface of the on-disk
// graph cache. No global filesystem state; the directory and TTL are
// constructor parameters.
package cache

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/routeloop/engine/graph"
)

// DefaultTTL is the default cache lifetime.
const DefaultTTL = 7 * 24 * time.Hour

// Config configures a Cache instance.
type Config struct {
	Dir    string
	TTL    time.Duration
	Logger *slog.Logger
}

// DefaultConfig returns a Config rooted at dir with the contract-level
// default TTL and a text logger writing to stderr.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:    dir,
		TTL:    DefaultTTL,
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
}

// Cache is an on-disk, tile-keyed graph cache. Single-writer per key;
// readers tolerate a concurrently-in-progress write by treating it as a
// miss.
type Cache struct {
	cfg Config
}

// New builds a Cache rooted at cfg.Dir, creating the directory if it does
// not already exist.
func New(cfg Config) (*Cache, error) {
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: create dir %s: %w", cfg.Dir, err)
	}

	return &Cache{cfg: cfg}, nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.cfg.Dir, fmt.Sprintf("osm-%s.json", key))
}

// Write persists g under the tile key derived from area. Rejects and
// returns ErrEmptyGraphRejected without touching disk when g has zero
// nodes or zero edges.
//
// Writes are not atomic against concurrent readers: a concurrent reader
// of an in-progress write treats the file as absent and proceeds to
// rebuild. Write truncates the target file in place rather
// than write-then-rename, so a reader racing a writer sees either the old
// content, no content, or a parse failure, all of which Read treats as a
// miss.
func (c *Cache) Write(area Area, g *graph.Graph, osmDataVersion string) error {
	if g.NodeCount() == 0 || g.EdgeCount() == 0 {
		return ErrEmptyGraphRejected
	}

	env := newEnvelope(area, g, osmDataVersion, time.Now())
	if env.NodesCount == 0 || env.EdgesCount == 0 {
		return ErrEmptyGraphRejected
	}

	f, err := os.Create(c.path(Key(area)))
	if err != nil {
		return fmt.Errorf("cache: open for write: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("cache: encode envelope: %w", err)
	}

	c.cfg.Logger.Info("cache write",
		slog.String("key", Key(area)),
		slog.Int("nodes", env.NodesCount),
		slog.Int("edges", env.EdgesCount),
	)

	return nil
}

// Read returns the cached graph for area if a fresh, non-empty entry
// exists. Returns (nil, false, nil) on any kind of miss — absent file,
// stale entry, empty entry, or a partially-written/corrupt file — and the
// caller rebuilds. Any other error opening the entry file (anything but
// the common absent-file case) is logged and still reported as a miss,
// never fatal.
func (c *Cache) Read(area Area) (*graph.Graph, bool, error) {
	f, err := os.Open(c.path(Key(area)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}

		c.cfg.Logger.Warn("cache read error", slog.String("error", err.Error()))

		return nil, false, nil
	}
	defer f.Close()

	var env Envelope
	if err := json.NewDecoder(f).Decode(&env); err != nil {
		// A partially written file decodes to an error; treat as absent.
		c.cfg.Logger.Warn("cache entry unreadable, treating as miss",
			slog.String("key", Key(area)), slog.String("error", err.Error()))

		return nil, false, nil
	}

	if env.NodesCount == 0 || env.EdgesCount == 0 {
		return nil, false, nil
	}

	if time.Since(env.CreatedAt) > c.cfg.TTL {
		return nil, false, nil
	}

	g, err := graph.FromSnapshot(env.Graph)
	if err != nil {
		return nil, false, nil
	}

	if g.NodeCount() == 0 || g.EdgeCount() == 0 {
		return nil, false, nil
	}

	return g, true, nil
}

// Sweep walks the cache directory and deletes every entry whose age
// exceeds the configured TTL, returning the number removed.
func (c *Cache) Sweep() (int, error) {
	entries, err := os.ReadDir(c.cfg.Dir)
	if err != nil {
		return 0, fmt.Errorf("cache: read dir: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		full := filepath.Join(c.cfg.Dir, entry.Name())
		stale, err := c.isStale(full)
		if err != nil || !stale {
			continue
		}

		if err := os.Remove(full); err == nil {
			removed++
		}
	}

	c.cfg.Logger.Info("cache sweep complete", slog.Int("removed", removed))

	return removed, nil
}

func (c *Cache) isStale(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	var env Envelope
	if err := json.NewDecoder(f).Decode(&env); err != nil {
		// Unreadable entries are swept too: they can never serve a read.
		return true, nil
	}

	return time.Since(env.CreatedAt) > c.cfg.TTL, nil
}

// Stats reports entry count and total byte size of the cache directory.
type Stats struct {
	Entries    int
	TotalBytes int64
}

// Stats computes a Stats summary of the cache directory.
func (c *Cache) Stats() (Stats, error) {
	entries, err := os.ReadDir(c.cfg.Dir)
	if err != nil {
		return Stats{}, fmt.Errorf("cache: read dir: %w", err)
	}

	var stats Stats
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		info, err := os.Stat(filepath.Join(c.cfg.Dir, name))
		if err != nil {
			continue
		}
		stats.Entries++
		stats.TotalBytes += info.Size()
	}

	return stats, nil
}
