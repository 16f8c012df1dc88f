package osmdata

import (
	"context"
	"fmt"
	"io"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
	"github.com/routeloop/engine/graph"
)

// FromXML reads an OSM XML (.osm) extract and returns the raw node/way
// stream graph.Build expects. XML extracts are small hand-made fixtures
// in practice, so unlike FromPBF this
// collects every node and way in a single forward pass rather than
// rewinding the reader, then keeps only the nodes actually referenced by a
// kept way.
func FromXML(ctx context.Context, r io.Reader) ([]graph.RawNode, []graph.RawWay, error) {
	allNodes := make(map[osm.NodeID]*osm.Node)
	var ways []graph.RawWay
	referenced := make(map[osm.NodeID]struct{})

	scanner := osmxml.New(ctx, r)

	for scanner.Scan() {
		switch v := scanner.Object().(type) {
		case *osm.Node:
			allNodes[v.ID] = v
		case *osm.Way:
			rw, ok := wayInfoForBuild(v)
			if !ok {
				continue
			}
			ways = append(ways, rw)
			for _, wn := range v.Nodes {
				referenced[wn.ID] = struct{}{}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, nil, fmt.Errorf("osmdata: xml scan: %w", err)
	}
	if err := scanner.Close(); err != nil {
		return nil, nil, fmt.Errorf("osmdata: xml close: %w", err)
	}

	nodes := make([]graph.RawNode, 0, len(referenced))
	for id := range referenced {
		n, ok := allNodes[id]
		if !ok {
			continue
		}
		nodes = append(nodes, nodeForBuild(n))
	}

	return nodes, ways, nil
}
