package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"slices"
	"strings"

	"lonelyrunner/internal/model"
	"lonelyrunner/internal/sat"
)

var (
	validSolvers = []string{"kissat", "cadical", "cryptominisat", "builtin"}
	solvers      = map[string]func() sat.SATSolver{
		"kissat":        sat.NewKissatSolver,
		"cadical":       sat.NewCadicalSolver,
		"cryptominisat": sat.NewCryptominisatSolver,
		"builtin":       sat.NewBacktrackSolver,
	}
)

func main() {
	// Define arguments
	kPtr := flag.Int("k", 0, "Number of velocities to select")
	primePtr := flag.Int("prime", 0, "Prime modulus excluding velocities and scaling the time axis")
	filePtr := flag.String("file", "", "Path to a JSON batch file of the form {\"runs\": [{\"k\": 4, \"prime\": 17}, ...]}; overrides -k and -prime")
	outPtr := flag.String("out", "", "Path where the DIMACS formula will be written (a directory in batch mode); if empty, it'll be written into the Standard Output")
	reducePtr := flag.Bool("reduce", true, "Apply the dominance reduction passes before assembling the instance")
	solvePtr := flag.Bool("solve", false, "Hand the generated formula to a SAT solver and report the verdict")
	solverPtr := flag.String("solver", "kissat", "SAT-Solver to use with -solve. Allowed values are: \"kissat\", \"cadical\", \"cryptominisat\", \"builtin\", where \"kissat\" is the default")
	flag.Parse()
	filePath := *filePtr
	outPath := *outPtr
	solverStr := strings.ToLower(*solverPtr)

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" && (*kPtr == 0 || *primePtr == 0) {
		log.Fatal("either -file or both -k and -prime must be specified")
	}

	// Extract the runs
	runs := []model.Params{{K: *kPtr, Prime: *primePtr}}
	if filePath != "" {
		input, err := model.BatchFromJson(filePath)
		if err != nil {
			log.Fatalf("cannot parse batch file: %v", err)
		} else if len(input.Runs) == 0 {
			log.Fatal("batch file contains no runs")
		}
		runs = input.Runs
	}

	// Initialize engines
	generator := model.NewGenerator(*reducePtr)
	solver := solvers[solverStr]()

	exitCode := 0
	for _, params := range runs {
		instance, err := generator.Generate(params)
		if err != nil {
			log.Fatalf("cannot generate instance for k=%v prime=%v: %v", params.K, params.Prime, err)
		}

		writeFormula(instance, params, outPath, len(runs) > 1)
		writeSummary(instance, params)

		if *solvePtr {
			exitCode = solve(solver, generator, params, instance)
		}
	}

	os.Exit(exitCode)
}

// writeFormula emits the DIMACS stream to the requested destination. In
// batch mode each run gets its own file inside the output directory.
func writeFormula(instance *model.Instance, params model.Params, outPath string, batch bool) {
	dimacs := instance.Formula.ToDIMACS()

	if outPath == "" {
		fmt.Print(dimacs)
		return
	}

	target := outPath
	if batch {
		target = path.Join(outPath, fmt.Sprintf("lonely_k%v_p%v.cnf", params.K, params.Prime))
	}
	if err := os.WriteFile(target, []byte(dimacs), 0666); err != nil {
		log.Fatalf("an error occurred while writing the formula: %v", err)
	}
}

// writeSummary emits the side-channel diagnostics, kept strictly apart from
// the formula stream.
func writeSummary(instance *model.Instance, params model.Params) {
	fmt.Fprintf(os.Stderr, "c run k=%v prime=%v\n", params.K, params.Prime)
	for _, entry := range instance.Mapping {
		fmt.Fprintf(os.Stderr, "c var %v <-> v = %v\n", entry.Variable, entry.Velocity)
	}

	summary := instance.Summary
	fmt.Fprintf(os.Stderr, "c candidates=%v surviving=%v essentialTimes=%v uncoverable=%v variables=%v clauses=%v duration=%v\n",
		summary.InitialCandidates, summary.SurvivingCandidates, summary.EssentialTimes,
		summary.UncoverableTimes, summary.Variables, summary.Clauses, summary.Duration)
}

func solve(solver sat.SATSolver, generator model.Generator, params model.Params, instance *model.Instance) int {
	solution, err := solver.Solve(instance.Formula)
	if err != nil {
		log.Fatalf("an error occurred during solving: %v", err)
	} else if solution == nil {
		fmt.Fprintf(os.Stderr, "k=%v prime=%v: UNSATISFIABLE\n", params.K, params.Prime)
		return 20
	}

	if !generator.Verify(params, instance, solution) {
		fmt.Fprintf(os.Stderr, "k=%v prime=%v: solution failed verification\n", params.K, params.Prime)
		return 15
	}

	velocities := make([]int, 0, params.K)
	positives := make(map[int64]bool, len(solution))
	for _, literal := range solution {
		if literal > 0 {
			positives[literal] = true
		}
	}
	for _, entry := range instance.Mapping {
		if positives[entry.Variable] {
			velocities = append(velocities, entry.Velocity)
		}
	}
	fmt.Fprintf(os.Stderr, "k=%v prime=%v: SATISFIABLE, velocities %v\n", params.K, params.Prime, velocities)
	return 10
}
