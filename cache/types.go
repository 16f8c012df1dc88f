package cache

import (
	"time"

	"github.com/routeloop/engine/graph"
)

// Area identifies the geographic tile a cached graph covers. The cache
// key is a deterministic hash of these three fields at fixed precision.
type Area struct {
	CenterLat float64 `json:"center_lat"`
	CenterLon float64 `json:"center_lon"`
	RadiusKM  float64 `json:"radius_km"`
}

// Envelope is the persisted unit: an Area, the graph built for it, the
// source data version, a creation timestamp, and redundant node/edge
// counts kept alongside the graph so a reader can validate non-emptiness
// without fully deserializing the graph.
type Envelope struct {
	Area           Area           `json:"area"`
	Graph          graph.Snapshot `json:"graph"`
	OSMDataVersion string         `json:"osm_data_version"`
	CreatedAt      time.Time      `json:"created_at"`
	NodesCount     int            `json:"nodes_count"`
	EdgesCount     int            `json:"edges_count"`
}

// newEnvelope builds an Envelope from a built graph, filling in the
// redundant counts from the graph itself.
func newEnvelope(area Area, g *graph.Graph, osmDataVersion string, createdAt time.Time) Envelope {
	snap := g.Snapshot()

	return Envelope{
		Area:           area,
		Graph:          snap,
		OSMDataVersion: osmDataVersion,
		CreatedAt:      createdAt,
		NodesCount:     len(snap.Nodes),
		EdgesCount:     len(snap.Edges),
	}
}
