package maze

import "github.com/go-logr/logr"

// DefaultEdgeMargin keeps the start cell this many cells away from every
// grid edge, which makes early dead-ends against the boundary less likely.
const DefaultEdgeMargin = 5

// Probabilities are the three growth draws of Generate, each in [0, 1].
type Probabilities struct {
	Branch float64 // extend the same thread again
	Loop   float64 // connect into an already open cell
	Bridge float64 // cross an eligible corridor on the upper layer
}

// valid rejects probabilities outside [0, 1] (NaN included).
func (p Probabilities) valid() bool {
	for _, v := range []float64{p.Branch, p.Loop, p.Bridge} {
		if !(v >= 0 && v <= 1) {
			return false
		}
	}
	return true
}

// Option configures Generate and Build.
type Option func(*options)

type options struct {
	margin int
	log    logr.Logger
}

func defaultOptions() options {
	return options{
		margin: DefaultEdgeMargin,
		log:    logr.Discard(),
	}
}

// WithEdgeMargin sets the start-cell distance from the grid edges.
// Negative values are treated as zero.
func WithEdgeMargin(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.margin = n
	}
}

// WithLogger routes generation events to l at verbosity 1.
func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}
