package osmdata

import (
	"context"
	"fmt"
	"io"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/routeloop/engine/graph"
)

// FromPBF reads an OSM PBF extract and returns the raw node/way stream
// graph.Build expects. rs must support seeking: ways are scanned first to
// determine which node ids are actually referenced, then the stream is
// rewound and nodes are scanned again, keeping only the referenced ones.
func FromPBF(ctx context.Context, rs io.ReadSeeker) ([]graph.RawNode, []graph.RawWay, error) {
	referenced := make(map[osm.NodeID]struct{})
	var ways []graph.RawWay

	scanner := osmpbf.New(ctx, rs, 1)
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	for scanner.Scan() {
		w, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}

		rw, ok := wayInfoForBuild(w)
		if !ok {
			continue
		}

		ways = append(ways, rw)
		for _, wn := range w.Nodes {
			referenced[wn.ID] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, nil, fmt.Errorf("osmdata: pbf pass 1 (ways): %w", err)
	}
	if err := scanner.Close(); err != nil {
		return nil, nil, fmt.Errorf("osmdata: pbf pass 1 close: %w", err)
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSeekUnsupported, err)
	}

	var nodes []graph.RawNode

	scanner = osmpbf.New(ctx, rs, 1)
	scanner.SkipWays = true
	scanner.SkipRelations = true

	for scanner.Scan() {
		n, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if _, needed := referenced[n.ID]; !needed {
			continue
		}

		nodes = append(nodes, nodeForBuild(n))
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, nil, fmt.Errorf("osmdata: pbf pass 2 (nodes): %w", err)
	}
	if err := scanner.Close(); err != nil {
		return nil, nil, fmt.Errorf("osmdata: pbf pass 2 close: %w", err)
	}

	return nodes, ways, nil
}
