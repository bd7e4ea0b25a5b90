/*
The pagerank package estimates the rank of the nodes of a graph.Graph with two
independent strategies:

Sample:
simulates a long random surfer walk and returns the visit frequency of each node.
The result is noisy, and improves with the number of samples.

Iterate:
repeatedly recomputes each rank from the ranks of its predecessors until the
largest change of any rank falls below a threshold.

Both return a models.PagerankMap with one entry per node summing to 1, and both
only read the graph, so they can run concurrently on the same graph.
CrossValidate runs them side by side and measures how far apart they are.
*/
package pagerank

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/vertex-lab/linkrank/pkg/utils/logger"
)

const (
	DefaultDamping       float64 = 0.85
	DefaultSamples       int     = 10000
	DefaultThreshold     float64 = 0.001

	// iteration cap used when MaxIterations is zero and damping is 1
	DefaultMaxIterations int = 1000
)

// Config holds the parameters of the estimators.
type Config struct {
	// probability of following a link instead of teleporting to a random node
	Damping float64

	// number of nodes visited by the random surfer in Sample
	Samples int

	// Iterate stops when no rank changes by Threshold or more, or fails after
	// MaxIterations. Zero MaxIterations means IterationBound(Damping, Threshold).
	Threshold     float64
	MaxIterations int

	// number of Sample runs done by CrossValidate
	Trials int

	// seed of the random surfer. Zero means seeded by the current time
	Seed int64

	Log *logger.Aggregate
}

// NewConfig() returns a config with default parameters.
func NewConfig() Config {
	return Config{
		Damping:       DefaultDamping,
		Samples:       DefaultSamples,
		Threshold:     DefaultThreshold,
		MaxIterations: 0,
	}
}

func (c Config) Print(out io.Writer) {
	fmt.Fprintln(out, "Pagerank:")
	fmt.Fprintf(out, "  Damping: %v\n", c.Damping)
	fmt.Fprintf(out, "  Samples: %d\n", c.Samples)
	fmt.Fprintf(out, "  Threshold: %v\n", c.Threshold)
	fmt.Fprintf(out, "  MaxIterations: %d\n", c.MaxIterations)
	fmt.Fprintf(out, "  Trials: %d\n", c.Trials)
	fmt.Fprintf(out, "  Seed: %d\n", c.Seed)
}

// Validate() returns the appropriate error if one of the parameters is out of range.
func (c Config) Validate() error {
	if err := checkDamping(c.Damping); err != nil {
		return err
	}

	if err := checkSamples(c.Samples); err != nil {
		return err
	}

	if err := checkConvergence(c.Threshold, c.MaxIterations); err != nil {
		return err
	}

	if c.Trials < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTrials, c.Trials)
	}

	return nil
}

func checkDamping(damping float64) error {
	if math.IsNaN(damping) || damping < 0 || damping > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidDamping, damping)
	}
	return nil
}

func checkSamples(samples int) error {
	if samples < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, samples)
	}
	return nil
}

func checkConvergence(threshold float64, maxIterations int) error {
	if math.IsNaN(threshold) || threshold <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, threshold)
	}

	if maxIterations < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxIterations, maxIterations)
	}
	return nil
}

/*
IterationBound returns the number of iterations after which Iterate is
guaranteed to converge for any graph.

Each iteration shrinks the L1 distance from the pagerank by a factor damping,
starting from at most 2, so the change between iterations k-1 and k is at most
4 * damping^(k-1). The bound is the first k that makes it smaller than threshold,
plus a margin for rounding. With damping 1 there is no such k, and
DefaultMaxIterations is returned.
*/
func IterationBound(damping, threshold float64) int {
	if damping >= 1 {
		return DefaultMaxIterations
	}

	if damping <= 0 || threshold >= 4 {
		return 2
	}

	bound := math.Ceil(math.Log(threshold/4)/math.Log(damping)) + 2
	return int(math.Min(bound, maxIterationBound))
}

const maxIterationBound = 1 << 30

//--------------------------ERROR-CODES--------------------------

var ErrInvalidParameter = errors.New("invalid parameter")

var ErrInvalidDamping = fmt.Errorf("%w: damping factor should be a number between 0 and 1", ErrInvalidParameter)
var ErrInvalidSamples = fmt.Errorf("%w: sample count should be greater than zero", ErrInvalidParameter)
var ErrInvalidThreshold = fmt.Errorf("%w: convergence threshold should be greater than zero", ErrInvalidParameter)
var ErrInvalidMaxIterations = fmt.Errorf("%w: max iterations should not be negative", ErrInvalidParameter)
var ErrInvalidTrials = fmt.Errorf("%w: trials should not be negative", ErrInvalidParameter)

var ErrDidNotConverge = errors.New("pagerank did not converge")
