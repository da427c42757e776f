package main

import (
	"encoding/json"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: go run ./bench/tools <base_json_file> <current_json_file>")
		os.Exit(1)
	}

	base, err := loadSummary(os.Args[1])
	if err != nil {
		fmt.Printf("Error loading base file: %v\n", err)
		os.Exit(1)
	}
	current, err := loadSummary(os.Args[2])
	if err != nil {
		fmt.Printf("Error loading current file: %v\n", err)
		os.Exit(1)
	}

	summary := compareSummaries(base, current)
	printComparisonSummary(summary)

	outputPath := "benchmark-comparison.json"
	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		fmt.Printf("Error creating comparison JSON: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		fmt.Printf("Error writing comparison file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Comparison JSON written to %s\n", outputPath)

	if summary.RegressionBenchmarks > 0 {
		fmt.Printf("\nWARNING: %d benchmarks regressed significantly\n", summary.RegressionBenchmarks)
		os.Exit(1)
	}
}

func loadSummary(path string) (BenchSummary, error) {
	var s BenchSummary
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// printComparisonSummary outputs a human-readable comparison report
func printComparisonSummary(summary ComparisonSummary) {
	fmt.Printf("Benchmark Comparison: %s vs %s\n\n", summary.BaseCommit, summary.CurrentCommit)
	fmt.Printf("- Total benchmarks compared: %d\n", summary.TotalBenchmarks)
	fmt.Printf("- Improvements: %d\n", summary.ImprovedBenchmarks)
	fmt.Printf("- Regressions: %d\n\n", summary.RegressionBenchmarks)

	if summary.TotalBenchmarks == 0 {
		fmt.Println("No matching benchmarks found for comparison")
		return
	}

	for _, comp := range summary.BenchmarkComparisons {
		fmt.Printf("%s %s (%s), score %+.2f\n", comp.OverallAssessment, comp.Name, comp.Category, comp.Score)
		for _, m := range comp.MetricComparisons {
			if m.PercentChange == 0 {
				continue
			}
			marker := " "
			if m.IsRegression && m.IsSignificant {
				marker = "v"
			} else if m.IsImprovement && m.IsSignificant {
				marker = "^"
			}
			fmt.Printf("  %s %-24s: %+8.2f%% (%g -> %g)\n",
				marker, m.Name, m.PercentChange, m.BaseValue, m.CurrentValue)
		}
	}
}
