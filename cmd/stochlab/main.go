package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/stochlab/internal/config"
	"github.com/san-kum/stochlab/internal/engine"
	"github.com/san-kum/stochlab/internal/market"
	"github.com/san-kum/stochlab/internal/metrics"
	"github.com/san-kum/stochlab/internal/process"
	"github.com/san-kum/stochlab/internal/rng"
	"github.com/san-kum/stochlab/internal/storage"
	"github.com/san-kum/stochlab/internal/viz"
)

var (
	dataDir string

	asset      string
	initial    float64
	steps      int
	dt         float64
	startDate  string
	drift      float64
	volatility float64
	seed       int64
	// mean reversion
	speed  float64
	target float64
	// jump process
	jumpIntensity float64
	jumpMean      float64
	jumpVol       float64
	// asset-class adjustments
	divYield         float64
	domesticRate     float64
	foreignRate      float64
	storageCost      float64
	convenienceYield float64
	seasonalAmp      float64
	creditSpread     float64
	peRatio          float64
	earningsGrowth   float64
	// derivative terms
	strike     float64
	put        bool
	impliedVol float64
	expiry     float64
	riskFree   float64
	// correlation factors as name=coefficient pairs
	corrFactors []string

	configFile string
	preset     string
	frameRate  int
	numRuns    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stochlab",
		Short: "stochastic path synthesis lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".stochlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "synthesize one path",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addScenarioFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "synthesize one path with live replay",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble [model]",
		Short: "run independent paths across seeds",
		Args:  cobra.ExactArgs(1),
		RunE:  runEnsemble,
	}
	addScenarioFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&numRuns, "runs", 100, "number of runs")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "chart a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a stored path as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write a stored run as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list models and asset classes",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("models:")
			for _, k := range process.Kinds() {
				fmt.Printf("  %s\n", k)
			}
			fmt.Println("asset classes:")
			for _, c := range market.All() {
				fmt.Printf("  %s\n", c)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, ensembleCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd, modelsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&asset, "asset", "equity", "asset class")
	cmd.Flags().Float64Var(&initial, "initial", config.DefaultInitial, "initial level")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "step size in year fractions")
	cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&drift, "drift", config.DefaultDrift, "annual drift")
	cmd.Flags().Float64Var(&volatility, "vol", config.DefaultVolatility, "annual volatility")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&speed, "speed", 0, "mean-reversion speed")
	cmd.Flags().Float64Var(&target, "target", 0, "mean-reversion target")
	cmd.Flags().Float64Var(&jumpIntensity, "jump-intensity", 0, "jump arrivals per year")
	cmd.Flags().Float64Var(&jumpMean, "jump-mean", 0, "mean log jump size")
	cmd.Flags().Float64Var(&jumpVol, "jump-vol", 0, "log jump size volatility")
	cmd.Flags().Float64Var(&divYield, "dividend-yield", 0, "dividend yield (equity)")
	cmd.Flags().Float64Var(&domesticRate, "domestic-rate", 0, "domestic rate (fx)")
	cmd.Flags().Float64Var(&foreignRate, "foreign-rate", 0, "foreign rate (fx)")
	cmd.Flags().Float64Var(&storageCost, "storage-cost", 0, "storage cost (commodity)")
	cmd.Flags().Float64Var(&convenienceYield, "convenience-yield", 0, "convenience yield (commodity)")
	cmd.Flags().Float64Var(&seasonalAmp, "seasonal-amp", 0, "seasonal amplitude")
	cmd.Flags().Float64Var(&creditSpread, "credit-spread", 0, "credit spread (cds)")
	cmd.Flags().Float64Var(&peRatio, "pe", 0, "price/earnings ratio (equity)")
	cmd.Flags().Float64Var(&earningsGrowth, "earnings-growth", 0, "forward earnings growth (equity)")
	cmd.Flags().Float64Var(&strike, "strike", config.DefaultInitial, "strike (option/swaption)")
	cmd.Flags().BoolVar(&put, "put", false, "price a put/receiver instead of a call/payer")
	cmd.Flags().Float64Var(&impliedVol, "implied-vol", config.DefaultVolatility, "implied volatility")
	cmd.Flags().Float64Var(&expiry, "expiry", 1.0, "time to expiry in years")
	cmd.Flags().Float64Var(&riskFree, "rate", config.DefaultRiskFree, "risk-free rate")
	cmd.Flags().StringArrayVar(&corrFactors, "corr", nil, "correlation factor as name=coefficient (repeatable)")
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
}

// buildScenario resolves preset, config file, and flags, in increasing
// precedence, into one scenario.
func buildScenario(cmd *cobra.Command, model string) (*config.Scenario, error) {
	sc := config.DefaultScenario()
	sc.Model = model

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		cp := *p
		sc = &cp
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		loaded.Model = model
		sc = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("asset") {
		sc.Asset = asset
	}
	if flags.Changed("initial") {
		sc.Initial = initial
	}
	if flags.Changed("steps") {
		sc.Steps = steps
	}
	if flags.Changed("dt") {
		sc.Dt = dt
	}
	if flags.Changed("start") {
		sc.Start = startDate
	}
	if flags.Changed("drift") {
		sc.Drift = drift
	}
	if flags.Changed("vol") {
		sc.Volatility = volatility
	}
	if flags.Changed("speed") {
		sc.Reversion.Speed = speed
	}
	if flags.Changed("target") {
		sc.Reversion.Target = target
	}
	if flags.Changed("jump-intensity") {
		sc.Jump.Intensity = jumpIntensity
	}
	if flags.Changed("jump-mean") {
		sc.Jump.Mean = jumpMean
	}
	if flags.Changed("jump-vol") {
		sc.Jump.Volatility = jumpVol
	}
	if flags.Changed("dividend-yield") {
		sc.Adjustments.DividendYield = divYield
	}
	if flags.Changed("domestic-rate") {
		sc.Adjustments.DomesticRate = domesticRate
	}
	if flags.Changed("foreign-rate") {
		sc.Adjustments.ForeignRate = foreignRate
	}
	if flags.Changed("storage-cost") {
		sc.Adjustments.StorageCost = storageCost
	}
	if flags.Changed("convenience-yield") {
		sc.Adjustments.ConvenienceYield = convenienceYield
	}
	if flags.Changed("seasonal-amp") {
		sc.Adjustments.SeasonalAmplitude = seasonalAmp
	}
	if flags.Changed("credit-spread") {
		sc.Adjustments.CreditSpread = creditSpread
	}
	if flags.Changed("pe") {
		sc.Adjustments.PERatio = peRatio
	}
	if flags.Changed("earnings-growth") {
		sc.Adjustments.EarningsGrowth = earningsGrowth
	}
	if flags.Changed("strike") {
		sc.Derivative.Strike = strike
	}
	if flags.Changed("put") {
		sc.Derivative.Call = !put
	}
	if flags.Changed("implied-vol") {
		sc.Derivative.ImpliedVol = impliedVol
	}
	if flags.Changed("expiry") {
		sc.Derivative.Expiry = expiry
	}
	if flags.Changed("rate") {
		sc.Derivative.RiskFree = riskFree
	}
	if flags.Changed("seed") || sc.Seed == 0 {
		sc.Seed = seed
	}

	if len(corrFactors) > 0 {
		if sc.Correlations == nil {
			sc.Correlations = make(map[string]float64)
		}
		for _, pair := range corrFactors {
			name, coeff, err := parseCorr(pair)
			if err != nil {
				return nil, err
			}
			sc.Correlations[name] = coeff
		}
	}
	return sc, nil
}

func parseCorr(pair string) (string, float64, error) {
	name, value, ok := strings.Cut(pair, "=")
	if !ok || name == "" {
		return "", 0, fmt.Errorf("invalid correlation %q, want name=coefficient", pair)
	}
	coeff, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid correlation coefficient %q: %w", value, err)
	}
	return name, coeff, nil
}

func synthesize(cmd *cobra.Command, model string) (*engine.Result, *config.Scenario, error) {
	sc, err := buildScenario(cmd, model)
	if err != nil {
		return nil, nil, err
	}
	params, err := sc.Params()
	if err != nil {
		return nil, nil, err
	}

	e := engine.New()
	e.AddMetric(metrics.NewRealizedVol(params.Dt))
	e.AddMetric(metrics.NewMaxDrawdown())
	e.AddMetric(metrics.NewTerminal())

	result, err := e.Run(params, rng.New(sc.Seed))
	if err != nil {
		return nil, nil, err
	}
	return result, sc, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	model := args[0]

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("synthesizing %s path...\n", model)
	begin := time.Now()

	result, sc, err := synthesize(cmd, model)
	if err != nil {
		return err
	}

	runID, err := st.Save(sc.Seed, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(begin))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("points: %d\n", len(result.Path))

	s := result.Summary
	fmt.Println("\nsummary:")
	fmt.Printf("  min: %.6f\n", s.Min)
	fmt.Printf("  max: %.6f\n", s.Max)
	fmt.Printf("  mean: %.6f\n", s.Mean)
	fmt.Printf("  stddev: %.6f\n", s.StdDev)

	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	result, _, err := synthesize(cmd, args[0])
	if err != nil {
		return err
	}
	return viz.Run(result, frameRate)
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	sc, err := buildScenario(cmd, args[0])
	if err != nil {
		return err
	}
	params, err := sc.Params()
	if err != nil {
		return err
	}

	fmt.Printf("running %d paths...\n", numRuns)
	begin := time.Now()

	results, err := engine.NewEnsemble(numRuns, sc.Seed).Run(params)
	if err != nil {
		return err
	}

	terminal := make([]float64, len(results))
	for i, res := range results {
		terminal[i] = res.Path[len(res.Path)-1].Value
	}

	min, max, sum := terminal[0], terminal[0], 0.0
	for _, v := range terminal {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / float64(len(terminal))
	varSum := 0.0
	for _, v := range terminal {
		varSum += (v - mean) * (v - mean)
	}

	fmt.Printf("completed in %v\n\n", time.Since(begin))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TERMINAL\tVALUE")
	fmt.Fprintf(w, "min\t%.6f\n", min)
	fmt.Fprintf(w, "max\t%.6f\n", max)
	fmt.Fprintf(w, "mean\t%.6f\n", mean)
	fmt.Fprintf(w, "stddev\t%.6f\n", math.Sqrt(varSum/float64(len(terminal))))
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tASSET\tTIME\tSTEPS\tMEAN\tSTDDEV")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.4f\t%.4f\n",
			run.ID,
			run.Model,
			run.Asset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Summary.Mean,
			run.Summary.StdDev,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.LoadMetadata(runID)
	if err != nil {
		return err
	}
	path, err := st.LoadPath(runID)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return fmt.Errorf("no data to plot")
	}

	values := make([]float64, len(path))
	for i, pt := range path {
		values[i] = pt.Value
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s  asset: %s\n\n", meta.Model, meta.Asset)
	fmt.Println(asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(90)))
	fmt.Printf("\nmin %.4f  max %.4f  mean %.4f  stddev %.4f\n",
		meta.Summary.Min, meta.Summary.Max, meta.Summary.Mean, meta.Summary.StdDev)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	path, err := st.LoadPath(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, path)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.LoadMetadata(args[0])
	if err != nil {
		return err
	}
	path, err := st.LoadPath(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, path)
}
