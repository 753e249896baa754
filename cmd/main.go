package main

import (
	"fmt"
	"log"
	"os"

	"lonelyrunner/internal/model"
)

const (
	K     = 7
	Prime = 43
)

func main() {
	params := model.Params{K: K, Prime: Prime}
	fmt.Fprintf(os.Stderr, "k = %v, n = %v, prime = %v, period = %v, halfPeriod = %v\n",
		params.K, params.RunnerCount(), params.Prime, params.Period(), params.HalfPeriod())

	generator := model.NewGenerator(true)
	instance, err := generator.Generate(params)
	if err != nil {
		log.Fatalf("cannot generate instance: %v", err)
	}

	// The formula stream goes to stdout, everything else to stderr
	fmt.Print(instance.Formula.ToDIMACS())

	fmt.Fprintln(os.Stderr, "c Variable-to-velocity mapping:")
	for _, entry := range instance.Mapping {
		fmt.Fprintf(os.Stderr, "c var %v <-> v = %v\n", entry.Variable, entry.Velocity)
	}

	summary := instance.Summary
	fmt.Fprintf(os.Stderr, "Candidates: %v (%v after reduction)\n", summary.InitialCandidates, summary.SurvivingCandidates)
	fmt.Fprintf(os.Stderr, "Essential times: %v (uncoverable: %v)\n", summary.EssentialTimes, summary.UncoverableTimes)
	fmt.Fprintf(os.Stderr, "Variables: %v\n", summary.Variables)
	fmt.Fprintf(os.Stderr, "Clauses: %v\n", summary.Clauses)
	fmt.Fprintf(os.Stderr, "Generation time: %v\n", summary.Duration)
}
