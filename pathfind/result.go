package pathfind

// Result is the outcome of a single search: the reconstructed path, the
// metric distance summed along it, the accumulated weight, a found flag,
// and the exploration count.
type Result struct {
	Path     []string // node ids, source first, target last
	Edges    []string // edge ids, in traversal order
	Distance float64  // metres, sum of Edge.Distance along Path
	Weight   float64  // sum of effective weight along Path
	Found    bool
	Explored int // number of nodes popped from the frontier
}

func reconstructPath(prevNode, prevEdge map[string]string, source, target string) ([]string, []string) {
	if target == source {
		return []string{source}, nil
	}

	var nodes []string
	var edges []string

	cur := target
	for cur != "" {
		nodes = append([]string{cur}, nodes...)
		if cur == source {
			break
		}
		e, ok := prevEdge[cur]
		if !ok {
			break
		}
		edges = append([]string{e}, edges...)
		cur = prevNode[cur]
	}

	return nodes, edges
}
