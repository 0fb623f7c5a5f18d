package bench

// Summary is the global average over every timed call of every benchmarked
// image.
type Summary struct {
	Images        int
	Runs          int
	BaselineMs    float64
	AcceleratedMs float64
}

// Aggregator keeps running totals across images benchmarked with the same
// run count. Only successfully benchmarked images should be accumulated.
type Aggregator struct {
	runs             int
	images           int
	baselineNanos    uint64
	acceleratedNanos uint64
}

func NewAggregator(runs int) *Aggregator {
	if runs < 1 {
		runs = 1
	}
	return &Aggregator{runs: runs}
}

// Accumulate adds the totals of one image. Every image contributes
// exactly runs calls per routine, so totals are summed unweighted.
func (a *Aggregator) Accumulate(result Result) {
	a.images++
	a.baselineNanos += result.BaselineNanos
	a.acceleratedNanos += result.AcceleratedNanos
}

func (a *Aggregator) Images() int {
	return a.images
}

func (a *Aggregator) Runs() int {
	return a.runs
}

// Finalize returns the per-call averages across all images. ok is false
// when nothing was accumulated.
func (a *Aggregator) Finalize() (summary Summary, ok bool) {
	if a.images == 0 {
		return Summary{Runs: a.runs}, false
	}

	calls := a.images * a.runs
	return Summary{
		Images:        a.images,
		Runs:          a.runs,
		BaselineMs:    averageMs(a.baselineNanos, calls),
		AcceleratedMs: averageMs(a.acceleratedNanos, calls),
	}, true
}
