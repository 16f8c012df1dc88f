// builder.go consumes a stream of raw map elements and produces a
// weighted, walkability-filtered Graph: assemble as the stream arrives,
// validate as you go, finalize once.
package graph

import (
	"strconv"
	"time"

	"github.com/paulmach/orb"
	"github.com/routeloop/engine/classify"
	"github.com/routeloop/engine/geo"
)

// RawNode is a node element from the raw map-data stream: a
// 64-bit id, a coordinate, and an optional elevation. The node's tag bag
// is not kept.
type RawNode struct {
	ID  int64
	Lat float64
	Lon float64
	// ElevationMeters is nil when the source carried no elevation data;
	// the engine never computes elevation itself.
	ElevationMeters *float64
}

// RawWay is a way element from the raw map-data stream: a
// 64-bit id, an ordered list of referenced node ids, and a tag bag.
type RawWay struct {
	ID      int64
	NodeIDs []int64
	Tags    map[string]string
}

// BuildOptions configures a single Build call.
type BuildOptions struct {
	Classifier       *classify.Classifier
	IncludeSecondary bool
	// MinLengthMeters drops any way whose resolved polyline is shorter
	// than this, after filtering. Zero disables the filter.
	MinLengthMeters float64
	// CenterLat/CenterLon are validated as a sanity check on the request
	// that triggered this build; they do not constrain which ways are
	// ingested.
	CenterLat, CenterLon float64
}

// DefaultBuildOptions returns contract-level defaults: the default
// classifier config, secondary ways excluded, no minimum length.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Classifier:       classify.New(classify.DefaultConfig()),
		IncludeSecondary: false,
	}
}

// Build consumes nodes and ways and produces a Graph: index the raw
// nodes, classify and resolve each way, emit canonical vertices and
// edges, link neighbourhoods bidirectionally, then finalize.
//
// Failure modes: ErrInvalidCoordinates if CenterLat/CenterLon (when either
// is non-zero) is out of geodetic range; ErrEmptyGraph if the resulting
// graph has zero nodes or zero edges.
//
// Complexity: O(N + W*L) where N is the node count, W the way count and L
// the average way length.
func Build(nodes []RawNode, ways []RawWay, opts BuildOptions) (*Graph, error) {
	start := time.Now()

	if (opts.CenterLat != 0 || opts.CenterLon != 0) && !geo.InRange(opts.CenterLat, opts.CenterLon) {
		return nil, ErrInvalidCoordinates
	}

	if opts.Classifier == nil {
		opts.Classifier = classify.New(classify.DefaultConfig())
	}

	// Step 1: index nodes by source id.
	index := make(map[int64]RawNode, len(nodes))
	for _, n := range nodes {
		index[n.ID] = n
	}

	g := newGraph()

	elementCount := len(nodes) + len(ways)

	for _, way := range ways {
		// Step 2: classify; resolve node references; drop under-resolved
		// or under-length ways.
		tags := classify.Parse(way.Tags)
		result := classifyWay(opts, tags)
		if !result.Walkable {
			continue
		}

		resolved := resolveNodes(index, way.NodeIDs)
		if len(resolved) < 2 {
			continue
		}

		if opts.MinLengthMeters > 0 {
			length := polylineLength(resolved)
			if length < opts.MinLengthMeters {
				continue
			}
		}

		// Step 3: emit vertices for each resolved coordinate.
		ids := make([]string, len(resolved))
		for i, rn := range resolved {
			id := CanonicalNodeID(rn.Lat, rn.Lon)
			ids[i] = id
			if _, exists := g.nodes[id]; !exists {
				g.nodes[id] = &Node{
					ID:        id,
					Lat:       rn.Lat,
					Lon:       rn.Lon,
					Elevation: rn.ElevationMeters,
				}
			}
		}

		// Step 4: emit edges for each consecutive pair.
		wayIDStr := wayIDString(way.ID)
		for i := 0; i+1 < len(ids); i++ {
			a, b := ids[i], ids[i+1]
			if a == b {
				continue // self-loop from duplicate consecutive nodes
			}

			edgeID := CanonicalEdgeID(a, b)
			if _, exists := g.edges[edgeID]; exists {
				// Overlapping ways referencing the same segment: keep the
				// first one encountered.
				continue
			}

			dist := geo.Haversine(g.nodes[a].Point(), g.nodes[b].Point())
			weight := EdgeWeight(dist, result.Surface, isDangerous(opts, tags), isPopular(tags), opts.Classifier)

			g.edges[edgeID] = &Edge{
				ID:           edgeID,
				From:         a,
				To:           b,
				Distance:     dist,
				Surface:      result.Surface,
				HighwayClass: tags.Highway,
				WayID:        wayIDStr,
				Quality:      result.Quality,
				Weight:       weight,
				Tags:         way.Tags,
			}

			// Step 5: bidirectional neighbourhood, deduplicated.
			addNeighbor(g.nodes[a], b)
			addNeighbor(g.nodes[b], a)
		}
	}

	// Step 6: finalize.
	if len(g.nodes) == 0 || len(g.edges) == 0 {
		return nil, ErrEmptyGraph
	}

	points := make([]orb.Point, 0, len(g.nodes))
	for _, n := range g.nodes {
		points = append(points, n.Point())
	}
	bbox, err := geo.BoundingBox(points)
	if err != nil {
		return nil, ErrEmptyGraph
	}
	g.bbox = bbox

	g.meta = Meta{
		TotalNodes:         len(g.nodes),
		TotalEdges:         len(g.edges),
		BuildTime:          time.Since(start),
		SourceElementCount: elementCount,
	}

	return g, nil
}

func classifyWay(opts BuildOptions, tags classify.Tags) classify.Result {
	return opts.Classifier.Classify(tags)
}

func isDangerous(opts BuildOptions, tags classify.Tags) bool {
	return classify.DefaultHighwaySets().Dangerous[tags.Highway]
}

func isPopular(tags classify.Tags) bool {
	return tags.Name != "" || tags.Ref != "" || tags.TrailVisibility == "excellent"
}

func resolveNodes(index map[int64]RawNode, ids []int64) []RawNode {
	resolved := make([]RawNode, 0, len(ids))
	for _, id := range ids {
		if n, ok := index[id]; ok {
			resolved = append(resolved, n)
		}
	}

	return resolved
}

func polylineLength(nodes []RawNode) float64 {
	total := 0.0
	for i := 0; i+1 < len(nodes); i++ {
		a := orb.Point{nodes[i].Lon, nodes[i].Lat}
		b := orb.Point{nodes[i+1].Lon, nodes[i+1].Lat}
		total += geo.Haversine(a, b)
	}

	return total
}

func addNeighbor(n *Node, neighborID string) {
	for _, existing := range n.Neighbors {
		if existing == neighborID {
			return
		}
	}
	n.Neighbors = append(n.Neighbors, neighborID)
}

func wayIDString(id int64) string {
	return strconv.FormatInt(id, 10)
}
