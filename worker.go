package quickhull

import "sync"

// parallelRedistributeThreshold is the combined outside-set size at or
// above which redistribute switches to the chunked worker-pool classification
// pass. Below it the fixed cost of spawning goroutines isn't worth paying.
const parallelRedistributeThreshold = 512

// chunk splits the range [0, n) into workers contiguous pieces and runs fn
// over each piece on its own goroutine, waiting for all to finish before
// returning. A direct generalization of this module's physics-engine
// ancestor's task() helper (chunked-range-over-goroutines), reused here for
// the embarrassingly parallel per-vertex face-acceptance classification in
// redistributeParallel.
func chunk(workers, n int, fn func(start, end int)) {
	if n == 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	chunkSize := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := min((w+1)*chunkSize, n)
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}

// redistributeParallel is a drop-in replacement for redistribute used once
// the combined outside-set size crosses parallelRedistributeThreshold. The
// winning new face for each vertex is read-only classification (pure
// distance comparisons against each new face's plane) and is safe to
// compute concurrently; the actual tryAssign calls, which mutate each
// face's outside slice, are applied back on the calling goroutine in the
// original vertex order so the result is bit-identical to the serial path.
func (e *Engine) redistributeParallel(visible []faceID, newFaces []faceID) {
	var verts []vertexID
	for _, vf := range visible {
		verts = append(verts, e.faces[vf].outside...)
	}
	if len(verts) == 0 {
		return
	}

	winners := make([]int, len(verts))
	workers := 4
	chunk(workers, len(verts), func(start, end int) {
		for i := start; i < end; i++ {
			winners[i] = -1
			pt := e.vertexPoint(verts[i])
			for fi, nf := range newFaces {
				ff := &e.faces[nf]
				if ff.normal.Dot(pt)+ff.offset >= 0 {
					winners[i] = fi
					break
				}
			}
		}
	})

	for i, v := range verts {
		if winners[i] >= 0 {
			e.tryAssign(newFaces[winners[i]], v)
		}
	}
}
