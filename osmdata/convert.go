package osmdata

import (
	"strconv"

	"github.com/paulmach/osm"
	"github.com/routeloop/engine/graph"
)

func wayInfoForBuild(w *osm.Way) (graph.RawWay, bool) {
	if len(w.Nodes) < 2 {
		return graph.RawWay{}, false
	}

	nodeIDs := make([]int64, len(w.Nodes))
	for i, wn := range w.Nodes {
		nodeIDs[i] = int64(wn.ID)
	}

	return graph.RawWay{
		ID:      int64(w.ID),
		NodeIDs: nodeIDs,
		Tags:    w.Tags.Map(),
	}, true
}

func nodeForBuild(n *osm.Node) graph.RawNode {
	rn := graph.RawNode{
		ID:  int64(n.ID),
		Lat: n.Lat,
		Lon: n.Lon,
	}

	if ele := n.Tags.Find("ele"); ele != "" {
		if v, err := strconv.ParseFloat(ele, 64); err == nil {
			rn.ElevationMeters = &v
		}
	}

	return rn
}
