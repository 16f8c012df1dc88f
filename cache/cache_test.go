package cache_test

import (
	"testing"
	"time"

	"github.com/routeloop/engine/cache"
	"github.com/routeloop/engine/graph"
	"github.com/stretchr/testify/require"
)

func unitSquareGraph(t *testing.T) *graph.Graph {
	t.Helper()

	nodes := []graph.RawNode{
		{ID: 1, Lat: 0, Lon: 0},
		{ID: 2, Lat: 0, Lon: 0.0225},
		{ID: 3, Lat: 0.0225, Lon: 0.0225},
		{ID: 4, Lat: 0.0225, Lon: 0},
	}
	ways := []graph.RawWay{
		{ID: 10, NodeIDs: []int64{1, 2}, Tags: map[string]string{"highway": "footway", "surface": "asphalt"}},
		{ID: 11, NodeIDs: []int64{2, 3}, Tags: map[string]string{"highway": "footway", "surface": "asphalt"}},
		{ID: 12, NodeIDs: []int64{3, 4}, Tags: map[string]string{"highway": "footway", "surface": "asphalt"}},
		{ID: 13, NodeIDs: []int64{4, 1}, Tags: map[string]string{"highway": "footway", "surface": "asphalt"}},
	}

	g, err := graph.Build(nodes, ways, graph.DefaultBuildOptions())
	require.NoError(t, err)

	return g
}

func newTestCache(t *testing.T, ttl time.Duration) *cache.Cache {
	t.Helper()

	cfg := cache.DefaultConfig(t.TempDir())
	cfg.TTL = ttl

	c, err := cache.New(cfg)
	require.NoError(t, err)

	return c
}

// Build and FromSnapshot never return an empty graph (ErrEmptyGraph), so
// the empty case uses a zero-value graph.Graph. Writing it must fail with
// ErrEmptyGraphRejected and leave no file behind; a genuinely populated
// graph then writes cleanly.
func TestWrite_RejectsEmptyGraph(t *testing.T) {
	require.NotNil(t, cache.ErrEmptyGraphRejected)

	c := newTestCache(t, time.Hour)
	area := cache.Area{CenterLat: 1, CenterLon: 1, RadiusKM: 5}

	require.ErrorIs(t, c.Write(area, &graph.Graph{}, "v1"), cache.ErrEmptyGraphRejected)
	stats, err := c.Stats()
	require.NoError(t, err)
	require.Equal(t, 0, stats.Entries)

	g := unitSquareGraph(t)

	require.NoError(t, c.Write(area, g, "v1"))
}

func TestReadWrite_RoundTrip(t *testing.T) {
	c := newTestCache(t, time.Hour)
	area := cache.Area{CenterLat: 0.01, CenterLon: 0.01, RadiusKM: 5}
	g := unitSquareGraph(t)

	require.NoError(t, c.Write(area, g, "v1"))

	got, ok, err := c.Read(area)
	require.NoError(t, err)
	require.True(t, ok, "expected cache hit")
	require.Equal(t, g.NodeCount(), got.NodeCount())
	require.Equal(t, g.EdgeCount(), got.EdgeCount())
}

func TestRead_MissWhenAbsent(t *testing.T) {
	c := newTestCache(t, time.Hour)
	area := cache.Area{CenterLat: 50, CenterLon: 10, RadiusKM: 3}

	_, ok, err := c.Read(area)
	require.NoError(t, err)
	require.False(t, ok, "expected miss for an area never written")
}

func TestRead_MissWhenStale(t *testing.T) {
	c := newTestCache(t, -time.Minute) // already-expired TTL
	area := cache.Area{CenterLat: 2, CenterLon: 2, RadiusKM: 5}
	g := unitSquareGraph(t)

	require.NoError(t, c.Write(area, g, "v1"))

	_, ok, err := c.Read(area)
	require.NoError(t, err)
	require.False(t, ok, "expected miss for an entry older than TTL")
}

func TestKey_DeterministicAndSensitiveToArea(t *testing.T) {
	a := cache.Area{CenterLat: 1.0000001, CenterLon: 2.0000004, RadiusKM: 5.001}
	require.Equal(t, cache.Key(a), cache.Key(a))

	c := cache.Area{CenterLat: 9, CenterLon: 9, RadiusKM: 9}
	require.NotEqual(t, cache.Key(a), cache.Key(c))
}

func TestSweep_RemovesStaleEntries(t *testing.T) {
	c := newTestCache(t, -time.Minute)
	area := cache.Area{CenterLat: 4, CenterLon: 4, RadiusKM: 5}
	g := unitSquareGraph(t)

	require.NoError(t, c.Write(area, g, "v1"))

	removed, err := c.Sweep()
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	stats, err := c.Stats()
	require.NoError(t, err)
	require.Equal(t, 0, stats.Entries)
}

func TestStats_CountsWrittenEntries(t *testing.T) {
	c := newTestCache(t, time.Hour)
	g := unitSquareGraph(t)

	areas := []cache.Area{
		{CenterLat: 10, CenterLon: 10, RadiusKM: 5},
		{CenterLat: 20, CenterLon: 20, RadiusKM: 5},
	}
	for _, a := range areas {
		require.NoError(t, c.Write(a, g, "v1"))
	}

	stats, err := c.Stats()
	require.NoError(t, err)
	require.Equal(t, 2, stats.Entries)
	require.Greater(t, stats.TotalBytes, int64(0))
}
