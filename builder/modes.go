package builder

// StarMode orients the spokes of a star.
type StarMode int

const (
	// StarOut points every spoke away from the center.
	StarOut StarMode = iota
	// StarIn points every spoke towards the center.
	StarIn
	// StarMutual adds both orientations on directed graphs.
	StarMutual
	// StarUndirected emits plain center-leaf edges.
	StarUndirected
)

func (m StarMode) String() string {
	switch m {
	case StarOut:
		return "out"
	case StarIn:
		return "in"
	case StarMutual:
		return "mutual"
	case StarUndirected:
		return "undirected"
	}
	return "unknown"
}

// TreeMode orients the edges of a tree.
type TreeMode int

const (
	// TreeOut points edges from parent to child.
	TreeOut TreeMode = iota
	// TreeIn points edges from child to parent.
	TreeIn
	// TreeUndirected emits plain parent-child edges.
	TreeUndirected
)

func (m TreeMode) String() string {
	switch m {
	case TreeOut:
		return "out"
	case TreeIn:
		return "in"
	case TreeUndirected:
		return "undirected"
	}
	return "unknown"
}
