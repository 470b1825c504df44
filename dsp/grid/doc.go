// Package grid plans the dense internal grids that lineshapes are evaluated
// and convolved on, and maps results back onto caller grids.
//
// A caller grid is any strictly monotonic sequence with at least two points.
// [Plan] derives a uniform internal grid from it:
//
//	step  = min(Spacing(x), widths...) / OversampleFactor
//	start = min(x) - SpanFactor*max(widths)
//	stop  = max(x) + SpanFactor*max(widths)
//
// The padding keeps convolution edge effects away from the caller's points.
// [Resample] interpolates a signal on the internal grid back onto the caller
// grid and holds the edge values outside the internal span.
package grid
