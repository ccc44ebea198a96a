package track

// removeAbsent drops every frame whose position is missing. A single
// compacting pass keeps the kept frames dense and contiguous.
func (t *Track) removeAbsent() {
	kept := t.samples[:0]
	for _, s := range t.samples {
		if s.Position == nil {
			t.removedAbsent++
			continue
		}
		kept = append(kept, s)
	}
	t.samples = kept
}

// removeOutliers drops frames that represent impossible jumps: any frame
// farther than the threshold from the nearest kept frame after it. Scanning
// backward against that anchor reproduces the semantics of deleting frame i
// whenever its distance to its current successor exceeds the threshold, in a
// single pass. The last frame is never removed, and a second run over already
// cleaned data removes nothing.
func (t *Track) removeOutliers(cfg Config) {
	n := len(t.samples)
	if n < 2 {
		return
	}

	keep := make([]bool, n)
	keep[n-1] = true
	anchor := t.samples[n-1].Position
	for i := n - 2; i >= 0; i-- {
		if HaversineM(*t.samples[i].Position, *anchor, cfg.EarthRadiusM) > cfg.OutlierThresholdM {
			t.removedOutliers++
			continue
		}
		keep[i] = true
		anchor = t.samples[i].Position
	}

	kept := t.samples[:0]
	for i, s := range t.samples {
		if keep[i] {
			kept = append(kept, s)
		}
	}
	t.samples = kept
}
