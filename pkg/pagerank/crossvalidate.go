package pagerank

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/vertex-lab/linkrank/pkg/graph"
	"github.com/vertex-lab/linkrank/pkg/models"
)

// Report compares the two estimators on the same graph.
type Report struct {
	Iterated models.PagerankMap

	// the mean over all trials of the sampled pagerank
	Sampled models.PagerankMap

	// L1 distance between Sampled and Iterated
	Distance float64

	// the largest difference between the Sampled and Iterated rank of any node
	MaxDifference float64

	// the largest L1 distance between a single trial and Iterated
	MaxTrialDistance float64

	Trials int
}

/*
CrossValidate computes the pagerank with Iterate, and with config.Trials
independent runs of Sample executed concurrently on G. Trial i uses the seed
config.Seed + i, so a non-zero seed makes the report reproducible up to
floating point summation order.

If config.Trials is zero, a single trial is done.
*/
func CrossValidate(G *graph.Graph, config Config) (*Report, error) {
	if err := G.Validate(); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	iterated, err := IterateWithConfig(G, config)
	if err != nil {
		return nil, err
	}

	trials := max(config.Trials, 1)
	seed := resolveSeed(config.Seed)

	mass := xsync.NewMapOf[string, float64]()
	done := xsync.NewCounter()
	distances := make([]float64, trials)

	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup

	for i := 0; i < trials; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			rng := rand.New(rand.NewSource(seed + int64(i)))
			sampled := sample(G, config.Damping, config.Samples, rng)
			distances[i] = models.Distance(sampled, iterated)

			for node, rank := range sampled {
				mass.Compute(node, func(total float64, _ bool) (float64, bool) {
					return total + rank, false
				})
			}

			done.Inc()
			config.Log.Info("CrossValidate: trial %d/%d distance %.6f", done.Value(), trials, distances[i])
		}(i)
	}

	wg.Wait()

	sampled := make(models.PagerankMap, G.Size())
	mass.Range(func(node string, total float64) bool {
		sampled[node] = total / float64(trials)
		return true
	})

	report := &Report{
		Iterated:      iterated,
		Sampled:       sampled,
		Distance:      models.Distance(sampled, iterated),
		MaxDifference: models.MaxDifference(sampled, iterated),
		Trials:        trials,
	}

	for _, d := range distances {
		report.MaxTrialDistance = max(report.MaxTrialDistance, d)
	}

	return report, nil
}
