// Package main compares two benchmark_history summaries written by the
// scale benchmarks in bench/.
package main

import (
	"sort"
	"strings"
)

// significanceThreshold is the percent change that marks a metric as significant.
const significanceThreshold = 5.0

// BenchResult is one entry of a summary's results array.
type BenchResult struct {
	Name     string             `json:"name"`
	Category string             `json:"category"`
	NsPerOp  float64            `json:"ns_per_op"`
	Metrics  map[string]float64 `json:"metrics"`
}

// BenchSummary mirrors the file layout of benchmark_history/*.json.
type BenchSummary struct {
	Timestamp string        `json:"timestamp"`
	CommitID  string        `json:"commit_id"`
	Branch    string        `json:"branch"`
	GoVersion string        `json:"go_version"`
	Results   []BenchResult `json:"results"`
}

// MetricComparison is the change of one metric between two runs.
type MetricComparison struct {
	Name          string  `json:"name"`
	BaseValue     float64 `json:"base_value"`
	CurrentValue  float64 `json:"current_value"`
	PercentChange float64 `json:"percent_change"`
	IsRegression  bool    `json:"is_regression"`
	IsImprovement bool    `json:"is_improvement"`
	IsSignificant bool    `json:"is_significant"`
}

// BenchmarkComparison groups the metric changes of one benchmark.
type BenchmarkComparison struct {
	Name              string             `json:"name"`
	Category          string             `json:"category"`
	MetricComparisons []MetricComparison `json:"metric_comparisons"`
	OverallAssessment string             `json:"overall_assessment"`
	HasRegressions    bool               `json:"has_regressions"`
	Score             float64            `json:"score"`
}

// ComparisonSummary is the full report written to benchmark-comparison.json.
type ComparisonSummary struct {
	BaseCommit           string                `json:"base_commit"`
	CurrentCommit        string                `json:"current_commit"`
	TotalBenchmarks      int                   `json:"total_benchmarks"`
	ImprovedBenchmarks   int                   `json:"improved_benchmarks"`
	RegressionBenchmarks int                   `json:"regression_benchmarks"`
	BenchmarkComparisons []BenchmarkComparison `json:"benchmark_comparisons"`
}

type direction int

const (
	informational direction = iota
	higherIsBetter
	lowerIsBetter
)

// metricDirection classifies the metric names the scale benchmarks emit.
// Capacities are a deterministic function of the key count, so they are
// reported but never scored.
func metricDirection(name string) direction {
	switch {
	case strings.HasSuffix(name, "_rate"):
		return higherIsBetter
	case strings.Contains(name, "capacity"):
		return informational
	default:
		// ns_per_op, longest_chain, empty_buckets, load_factor, grows,
		// shrinks, alloc_mb, sys_mb
		return lowerIsBetter
	}
}

// compareSummaries matches results by name; benchmarks missing from base
// are skipped. When a summary holds the same benchmark more than once the
// last entry wins.
func compareSummaries(base, current BenchSummary) ComparisonSummary {
	baseResults := make(map[string]BenchResult)
	for _, r := range base.Results {
		baseResults[r.Name] = r
	}
	currentResults := make(map[string]BenchResult)
	var names []string
	for _, r := range current.Results {
		if _, seen := currentResults[r.Name]; !seen {
			names = append(names, r.Name)
		}
		currentResults[r.Name] = r
	}

	summary := ComparisonSummary{
		BaseCommit:    base.CommitID,
		CurrentCommit: current.CommitID,
	}

	for _, name := range names {
		cur := currentResults[name]
		prev, found := baseResults[name]
		if !found {
			continue
		}

		comp := BenchmarkComparison{Name: name, Category: cur.Category}
		scored := 0
		for metric, value := range withNsPerOp(cur) {
			baseValue, ok := withNsPerOp(prev)[metric]
			if !ok {
				continue
			}
			m := compareMetric(metric, baseValue, value)
			comp.MetricComparisons = append(comp.MetricComparisons, m)

			if metricDirection(metric) == informational {
				continue
			}
			scored++
			if m.IsImprovement {
				comp.Score += abs(m.PercentChange)
			} else if m.IsRegression {
				comp.Score -= abs(m.PercentChange)
			}
			if m.IsRegression && m.IsSignificant {
				comp.HasRegressions = true
			}
		}
		if scored > 0 {
			comp.Score /= float64(scored)
		}

		sort.Slice(comp.MetricComparisons, func(i, j int) bool {
			return comp.MetricComparisons[i].Name < comp.MetricComparisons[j].Name
		})

		switch {
		case comp.HasRegressions:
			comp.OverallAssessment = "REGRESSION"
			summary.RegressionBenchmarks++
		case comp.Score > 0:
			comp.OverallAssessment = "IMPROVEMENT"
			summary.ImprovedBenchmarks++
		default:
			comp.OverallAssessment = "NEUTRAL"
		}
		summary.BenchmarkComparisons = append(summary.BenchmarkComparisons, comp)
	}

	// worst regressions first
	sort.SliceStable(summary.BenchmarkComparisons, func(i, j int) bool {
		a, b := summary.BenchmarkComparisons[i], summary.BenchmarkComparisons[j]
		if a.HasRegressions != b.HasRegressions {
			return a.HasRegressions
		}
		return a.Score < b.Score
	})
	summary.TotalBenchmarks = len(summary.BenchmarkComparisons)
	return summary
}

func compareMetric(name string, baseValue, currentValue float64) MetricComparison {
	m := MetricComparison{Name: name, BaseValue: baseValue, CurrentValue: currentValue}
	if baseValue != 0 {
		m.PercentChange = (currentValue - baseValue) / baseValue * 100
	}
	m.IsSignificant = abs(m.PercentChange) >= significanceThreshold

	switch metricDirection(name) {
	case higherIsBetter:
		m.IsRegression = m.PercentChange < 0
		m.IsImprovement = m.PercentChange > 0
	case lowerIsBetter:
		m.IsRegression = m.PercentChange > 0
		m.IsImprovement = m.PercentChange < 0
	}
	return m
}

func withNsPerOp(r BenchResult) map[string]float64 {
	out := make(map[string]float64, len(r.Metrics)+1)
	for k, v := range r.Metrics {
		out[k] = v
	}
	if r.NsPerOp != 0 {
		out["ns_per_op"] = r.NsPerOp
	}
	return out
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
