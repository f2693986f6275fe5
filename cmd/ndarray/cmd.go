package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray/internal/display"
	"github.com/born-ml/ndarray/internal/envconfig"
	"github.com/born-ml/ndarray/internal/tensor"
)

var errShapeFlag = errors.New("invalid shape")

// parseShape parses "2,3,4" or "2x3x4" into a shape.
func parseShape(s string) (tensor.Shape, error) {
	s = strings.Trim(strings.TrimSpace(s), "()")
	if s == "" {
		return nil, fmt.Errorf("%w: empty", errShapeFlag)
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == 'x' || r == ' '
	})
	shape := make(tensor.Shape, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errShapeFlag, f)
		}
		shape = append(shape, n)
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

func shapeFlag(cmd *cobra.Command, name string) (tensor.Shape, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}
	return parseShape(s)
}

// configure applies environment settings before any command runs.
func configure(cmd *cobra.Command, _ []string) {
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: envconfig.LogLevel()})
	slog.SetDefault(slog.New(handler))

	cfg := envconfig.Parallel()
	tensor.SetParallelConfig(cfg)
	tensor.SetMaxElements(int(envconfig.MaxElements()))
	slog.Debug("engine configured", "parallel", cfg.Enabled, "workers", cfg.NumWorkers, "min_chunk", cfg.MinChunkSize)
}

func versionHandler(cmd *cobra.Command, _ []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "ndarray version %s\n", version)
}

func envHandler(cmd *cobra.Command, _ []string) {
	vars := envconfig.AsMap()
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%v\t%s\n", k, vars[k].Value, vars[k].Description)
	}
}

// arangeShaped builds 1..size reshaped to shape.
func arangeShaped(shape tensor.Shape) (*tensor.Array, error) {
	a, err := tensor.Arange(1, float32(shape.NumElements()+1), 1)
	if err != nil {
		return nil, err
	}
	if err := tensor.ReshapeInPlace(a, shape); err != nil {
		a.Release()
		return nil, err
	}
	return a, nil
}

func InfoHandler(cmd *cobra.Command, _ []string) error {
	shape, err := shapeFlag(cmd, "shape")
	if err != nil {
		return err
	}

	a, err := tensor.New(shape)
	if err != nil {
		return err
	}
	defer a.Release()

	if transpose, _ := cmd.Flags().GetBool("transpose"); transpose {
		t, err := tensor.Transpose(a)
		if err != nil {
			return err
		}
		defer t.Release()
		a = t
	}

	return display.Info(cmd.OutOrStdout(), a)
}

func ShowHandler(cmd *cobra.Command, _ []string) error {
	start, _ := cmd.Flags().GetFloat32("start")
	end, _ := cmd.Flags().GetFloat32("end")
	step, _ := cmd.Flags().GetFloat32("step")

	a, err := tensor.Arange(start, end, step)
	if err != nil {
		return err
	}
	defer a.Release()

	if cmd.Flags().Changed("shape") {
		shape, err := shapeFlag(cmd, "shape")
		if err != nil {
			return err
		}
		if err := tensor.ReshapeInPlace(a, shape); err != nil {
			return err
		}
	}

	return display.Show(cmd.OutOrStdout(), a)
}

func RandHandler(cmd *cobra.Command, _ []string) error {
	shape, err := shapeFlag(cmd, "shape")
	if err != nil {
		return err
	}
	lo, _ := cmd.Flags().GetFloat32("min")
	hi, _ := cmd.Flags().GetFloat32("max")
	seed, _ := cmd.Flags().GetInt64("seed")

	a, err := tensor.Rand(rand.New(rand.NewSource(seed)), shape, lo, hi)
	if err != nil {
		return err
	}
	defer a.Release()

	return display.Show(cmd.OutOrStdout(), a)
}

func DemoAddHandler(cmd *cobra.Command, _ []string) error {
	a, err := tensor.FromValues(tensor.Shape{3, 1}, []float32{1, 2, 3})
	if err != nil {
		return err
	}
	defer a.Release()

	b, err := tensor.FromValues(tensor.Shape{1, 3}, []float32{10, 20, 30})
	if err != nil {
		return err
	}
	defer b.Release()

	sum, err := tensor.Add(a, b)
	if err != nil {
		return err
	}
	defer sum.Release()

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s + %s -> %s\n", a.Shape(), b.Shape(), sum.Shape())
	return display.Show(w, sum)
}

func DemoMatMulHandler(cmd *cobra.Command, _ []string) error {
	a, err := arangeShaped(tensor.Shape{2, 2, 3})
	if err != nil {
		return err
	}
	defer a.Release()

	b, err := arangeShaped(tensor.Shape{3, 2})
	if err != nil {
		return err
	}
	defer b.Release()

	c, err := tensor.MatMul(a, b)
	if err != nil {
		return err
	}
	defer c.Release()

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s @ %s -> %s\n", a.Shape(), b.Shape(), c.Shape())
	return display.Show(w, c)
}

func DemoDotHandler(cmd *cobra.Command, _ []string) error {
	a, err := tensor.Arange(1, 11, 1)
	if err != nil {
		return err
	}
	defer a.Release()

	d, err := tensor.Dot(a, a)
	if err != nil {
		return err
	}
	defer d.Release()

	fmt.Fprintf(cmd.OutOrStdout(), "dot(arange(1, 11), arange(1, 11)) = %g\n", d.Data()[0])
	return nil
}

func DemoSqueezeHandler(cmd *cobra.Command, _ []string) error {
	a, err := tensor.New(tensor.Shape{3, 1, 2, 1})
	if err != nil {
		return err
	}
	defer a.Release()

	b, err := tensor.Squeeze(a, -1)
	if err != nil {
		return err
	}
	defer b.Release()

	c, err := tensor.Squeeze(b, 1)
	if err != nil {
		return err
	}
	defer c.Release()

	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s -> %s\n", a.Shape(), b.Shape(), c.Shape())
	return nil
}

func newDemoCmd() *cobra.Command {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a worked example",
	}

	demoCmd.AddCommand(
		&cobra.Command{Use: "add", Short: "Broadcast (3, 1) + (1, 3)", Args: cobra.NoArgs, RunE: DemoAddHandler},
		&cobra.Command{Use: "matmul", Short: "Batched (2, 2, 3) @ (3, 2)", Args: cobra.NoArgs, RunE: DemoMatMulHandler},
		&cobra.Command{Use: "dot", Short: "Inner product of 1..10 with itself", Args: cobra.NoArgs, RunE: DemoDotHandler},
		&cobra.Command{Use: "squeeze", Short: "Squeeze (3, 1, 2, 1) twice", Args: cobra.NoArgs, RunE: DemoSqueezeHandler},
	)
	return demoCmd
}

func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "ndarray",
		Short:         "Dense float32 N-dimensional arrays",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: configure,
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				versionHandler(cmd, args)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run:   versionHandler,
	}

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Show environment settings",
		Args:  cobra.NoArgs,
		Run:   envHandler,
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show layout metadata for a shape",
		Args:  cobra.NoArgs,
		RunE:  InfoHandler,
	}
	infoCmd.Flags().String("shape", "2,3,4", "Array shape (e.g. 2,3,4)")
	infoCmd.Flags().Bool("transpose", false, "Show the transposed layout")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print an arange array",
		Args:  cobra.NoArgs,
		RunE:  ShowHandler,
	}
	showCmd.Flags().Float32("start", 0, "First value")
	showCmd.Flags().Float32("end", 6, "End value (exclusive)")
	showCmd.Flags().Float32("step", 1, "Step between values")
	showCmd.Flags().String("shape", "", "Reshape the result (e.g. 2,3)")

	randCmd := &cobra.Command{
		Use:   "rand",
		Short: "Print a uniform random array",
		Args:  cobra.NoArgs,
		RunE:  RandHandler,
	}
	randCmd.Flags().String("shape", "3,3", "Array shape")
	randCmd.Flags().Float32("min", 0, "Lower bound")
	randCmd.Flags().Float32("max", 1, "Upper bound (exclusive)")
	randCmd.Flags().Int64("seed", 0, "Random seed")

	rootCmd.AddCommand(
		versionCmd,
		envCmd,
		infoCmd,
		showCmd,
		randCmd,
		newDemoCmd(),
	)

	return rootCmd
}
