package ggseries

// BatchItem is one bar's input to Batch.
type BatchItem struct {
	Style Style
	// Group is an extra run key. Fills pass the trend direction so that a
	// change of direction (including to or from neutral) always starts a new
	// run, even when the colors coincide.
	Group int
	// Gap marks a bar that is not drawn: missing data, an unmappable price or
	// a hidden channel.
	Gap bool
}

// Run is a maximal stretch of consecutive non-gap items sharing Style and
// Group. Start and End are inclusive item indices.
type Run struct {
	Start, End int
	Style      Style
	Group      int
	// Joined reports that the item right before Start was drawn as part of
	// the previous run, so the run may be anchored on it for continuity.
	Joined bool
}

// Len returns the number of items in the run.
func (r Run) Len() int {
	return r.End - r.Start + 1
}

// Batch partitions items into style runs. Every attribute change, Group
// change or gap ends the current run, so the number of canvas state changes
// is bounded by the number of distinct runs instead of the number of bars.
func Batch(items []BatchItem) []Run {
	var runs []Run
	open := false
	for i, it := range items {
		if it.Gap {
			open = false
			continue
		}
		if open {
			last := &runs[len(runs)-1]
			if last.Style == it.Style && last.Group == it.Group {
				last.End = i
				continue
			}
		}
		runs = append(runs, Run{
			Start:  i,
			End:    i,
			Style:  it.Style,
			Group:  it.Group,
			Joined: open,
		})
		open = true
	}
	return runs
}
