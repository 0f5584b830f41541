package game

// RegionCount returns the number of maximal 8-connected groups of occupied cells.
//
// Time: O(rows*cols).
func (gs *GridState) RegionCount() int {
	return countRegions(gs.rows, gs.cols, gs.cells)
}

// Regions returns the occupied cells grouped by region. Regions are ordered by
// their first cell in row-major order; cells within a region are in visit order.
func (gs *GridState) Regions() [][]Cell {
	seen := make([]bool, len(gs.cells))
	var regions [][]Cell
	for i := range gs.cells {
		if gs.cells[i] == 0 || seen[i] {
			continue
		}
		var region []Cell
		floodFill(gs.rows, gs.cols, gs.cells, seen, i, func(j int) {
			region = append(region, Cell{Row: j / gs.cols, Col: j % gs.cols, Count: gs.cells[j]})
		})
		regions = append(regions, region)
	}
	return regions
}

// Hingers returns every cell holding a single counter whose removal would
// split its region, in row-major order.
//
// Time: O(h*rows*cols) where h is the number of single-counter cells.
func (gs *GridState) Hingers() []Move {
	baseline := gs.RegionCount()
	scratch := make([]int, len(gs.cells))
	copy(scratch, gs.cells)

	var hingers []Move
	for i, count := range gs.cells {
		if count != 1 {
			continue
		}
		scratch[i] = 0
		if countRegions(gs.rows, gs.cols, scratch) > baseline {
			hingers = append(hingers, Move{Row: i / gs.cols, Col: i % gs.cols})
		}
		scratch[i] = 1
	}
	return hingers
}

// HingerCount returns len(Hingers()).
func (gs *GridState) HingerCount() int {
	return len(gs.Hingers())
}

// IsHinger reports whether removing the counter at (r, c) would increase the
// number of regions.
func (gs *GridState) IsHinger(r, c int) (bool, error) {
	if err := gs.checkBounds(r, c); err != nil {
		return false, err
	}
	i := gs.index(r, c)
	if gs.cells[i] != 1 {
		return false, nil
	}
	scratch := make([]int, len(gs.cells))
	copy(scratch, gs.cells)
	scratch[i] = 0
	return countRegions(gs.rows, gs.cols, scratch) > gs.RegionCount(), nil
}

// IsSafe reports whether the state has no hingers.
func (gs *GridState) IsSafe() bool {
	return gs.HingerCount() == 0
}

func countRegions(rows, cols int, cells []int) int {
	seen := make([]bool, len(cells))
	regions := 0
	for i := range cells {
		if cells[i] == 0 || seen[i] {
			continue
		}
		floodFill(rows, cols, cells, seen, i, nil)
		regions++
	}
	return regions
}

// floodFill marks every occupied cell 8-reachable from start as seen, calling
// visit (if not nil) once per cell. It uses an explicit queue so board size is
// not bounded by stack depth.
func floodFill(rows, cols int, cells []int, seen []bool, start int, visit func(int)) {
	queue := []int{start}
	seen[start] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if visit != nil {
			visit(u)
		}
		ur, uc := u/cols, u%cols
		for _, d := range directions {
			vr, vc := ur+d[0], uc+d[1]
			if vr < 0 || vr >= rows || vc < 0 || vc >= cols {
				continue
			}
			v := vr*cols + vc
			if cells[v] > 0 && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
}
