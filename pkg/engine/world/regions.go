package world

// Region is a group of committed elements whose tiles touch edge to edge,
// listed in commit order
type Region struct {
	Elements []ElementID
}

// Contains returns true if the region holds the given element
func (r Region) Contains(id ElementID) bool {
	for _, e := range r.Elements {
		if e == id {
			return true
		}
	}
	return false
}

// Regions partitions the committed elements into connected groups. Two
// elements are connected when a tile of one is an edge neighbour of a tile
// of the other. Regions are ordered by their earliest committed element.
func (g *Grid) Regions() []Region {
	sets := g.unionElements()

	var regions []Region
	regionOf := make(map[int]int)
	for i, e := range g.elements {
		root := sets.find(i)
		index, ok := regionOf[root]
		if !ok {
			index = len(regions)
			regionOf[root] = index
			regions = append(regions, Region{})
		}
		regions[index].Elements = append(regions[index].Elements, e.id)
	}
	return regions
}

// Connected returns true if both elements are committed and belong to the same region
func (g *Grid) Connected(a, b ElementID) bool {
	ia, ib := g.indexOf(a), g.indexOf(b)
	if ia < 0 || ib < 0 {
		return false
	}
	sets := g.unionElements()
	return sets.find(ia) == sets.find(ib)
}

// unionElements builds one set per committed element, indexed like
// g.elements, and merges every pair that touches
func (g *Grid) unionElements() elementSets {
	sets := newElementSets(len(g.elements))

	for i, e := range g.elements {
		for _, c := range e.coords {
			// Right and Down neighbours suffice: every touching pair is seen from one side.
			for _, off := range [2][2]int{{1, 0}, {0, 1}} {
				x, y := c.X+off[0], c.Y+off[1]
				if !g.IsValidPosition(y, x) {
					continue
				}
				other := g.owner[y][x]
				if other == noOwner || other == i {
					continue
				}
				sets.union(i, other)
			}
		}
	}
	return sets
}

// elementSets is a union-by-rank disjoint set forest over element indices
type elementSets struct {
	parent []int
	rank   []int
}

func newElementSets(n int) elementSets {
	s := elementSets{parent: make([]int, n), rank: make([]int, n)}
	for i := range s.parent {
		s.parent[i] = i
	}
	return s
}

// find returns the root of i's set, compressing the path on the way
func (s elementSets) find(i int) int {
	if s.parent[i] != i {
		s.parent[i] = s.find(s.parent[i])
	}
	return s.parent[i]
}

func (s elementSets) union(a, b int) {
	x, y := s.find(a), s.find(b)
	if x == y {
		return
	}
	if s.rank[x] > s.rank[y] {
		s.parent[y] = x
		return
	}
	s.parent[x] = y
	if s.rank[x] == s.rank[y] {
		s.rank[y]++
	}
}

func (g *Grid) indexOf(id ElementID) int {
	for i, e := range g.elements {
		if e.id == id {
			return i
		}
	}
	return -1
}
