package sim

import (
	"context"
	"sync"
)

// Variant names one configuration of the simulation, built fresh for each
// run so no flight state leaks between parallel executions.
type Variant struct {
	Name  string
	Build func() *Runner
}

// Compare runs every variant under the same tick config in parallel and
// returns the results keyed by variant name. Used to put the two takeoff
// policies, or two presets, side by side.
func Compare(ctx context.Context, variants []Variant, cfg Config) (map[string]*Result, error) {
	results := make([]*Result, len(variants))
	errs := make([]error, len(variants))

	var wg sync.WaitGroup
	for i, v := range variants {
		wg.Add(1)
		go func(idx int, v Variant) {
			defer wg.Done()
			results[idx], errs[idx] = v.Build().Run(ctx, cfg)
		}(i, v)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	byName := make(map[string]*Result, len(variants))
	for i, v := range variants {
		byName[v.Name] = results[i]
	}
	return byName, nil
}
