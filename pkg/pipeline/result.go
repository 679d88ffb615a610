package pipeline

import "github.com/venkatsunilm/photo-post-processing/pkg/preset"

// Result is the immutable per-file outcome record appended to the batch
// report. Err is empty on success.
type Result struct {
	Source  string
	Format  preset.FormatClass
	Preset  string
	Success bool
	Err     string
	Outputs []string
}

// Summary aggregates a finished batch.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Archives  []string
}

// Summarize folds a result list into counts.
func Summarize(results []Result, archives []string) Summary {
	s := Summary{Total: len(results), Archives: archives}
	for _, r := range results {
		if r.Success {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}

// AnySucceeded reports whether at least one file made it through; the
// process exit status is derived from this.
func (s Summary) AnySucceeded() bool { return s.Succeeded > 0 }
