package gridgraph

// Label finds all contiguous regions of water cells according to the grid's
// LabelConn connectivity and numbers them 1..K in raster-scan order of their
// first cell. Dry cells get label 0.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for the label grid and BFS queue.
func (gg *Grid) Label() *LabelGrid {
	lg := &LabelGrid{
		Rows:   gg.Rows,
		Cols:   gg.Cols,
		Labels: make([]int32, gg.Rows*gg.Cols),
	}
	offsets := gg.opts.LabelConn.offsets()
	var queue []int

	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			i0 := gg.index(r, c)
			if !gg.water[i0] || lg.Labels[i0] != 0 {
				continue
			}
			// BFS to flood the region; a non-zero label doubles as the seen flag
			lg.Count++
			label := int32(lg.Count)
			lg.Labels[i0] = label
			queue = append(queue[:0], i0)

			for qi := 0; qi < len(queue); qi++ {
				u := gg.Coordinate(queue[qi])
				for _, d := range offsets {
					vr, vc := u.Row+d[0], u.Col+d[1]
					if !gg.IsWater(vr, vc) {
						continue
					}
					vi := gg.index(vr, vc)
					if lg.Labels[vi] == 0 {
						lg.Labels[vi] = label
						queue = append(queue, vi)
					}
				}
			}
		}
	}

	return lg
}
