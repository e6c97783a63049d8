package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dshills/nyota/internal/axes"
	"github.com/dshills/nyota/internal/chart"
	"github.com/dshills/nyota/internal/patch"
	"github.com/dshills/nyota/internal/render"
	"github.com/dshills/nyota/internal/responses"
	"github.com/dshills/nyota/internal/schema"
	"github.com/dshills/nyota/internal/schema/validate"
	"github.com/dshills/nyota/internal/scoring"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// Exit codes.
const (
	exitInput   = 3 // bad flags, unreadable or malformed input, invalid instrument
	exitMissing = 4 // a configured item has no response
	exitChart   = 5 // chart could not be rendered or written
)

// reportFlags holds the resolved settings for the report command.
type reportFlags struct {
	format      string
	out         string
	axesFile    string
	chartPath   string
	chartFormat string
	chartWidth  int
	chartHeight int
	chartColor  string
	title       string
	strict      bool
	noColor     bool
	verbose     bool
}

// axesFlags holds the resolved settings for the axes command.
type axesFlags struct {
	axesFile string
	diff     bool
	patchOut string
	verbose  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string
	root := &cobra.Command{
		Use:     "nyota",
		Short:   "Score the NYOTA personality questionnaire",
		Long:    "nyota turns 72 questionnaire ratings into eight personality-axis scores and draws them as a radar chart.",
		Version: version,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "Settings file (default: ./nyota.yaml or ~/.config/nyota/nyota.yaml)")

	var rf reportFlags
	reportCmd := &cobra.Command{
		Use:   "report <responses.json>",
		Short: "Compute the eight axis scores and render the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newSettings(cmd, configFile)
			if err != nil {
				return codeError(exitInput, "%s", err)
			}
			rf.resolve(v)
			return runReport(args[0], rf)
		},
	}
	f := reportCmd.Flags()
	f.StringVar(&rf.format, "format", "text", "Output format: text, json or md")
	f.StringVar(&rf.out, "out", "", "Write output to file instead of stdout")
	f.StringVar(&rf.axesFile, "axes", "", "YAML instrument file (default: built-in NYOTA instrument)")
	f.StringVar(&rf.chartPath, "chart", "", "Write the radar chart to this file (.png or .svg)")
	f.StringVar(&rf.chartFormat, "chart-format", "", "Chart format: png or svg (default: from --chart extension)")
	f.IntVar(&rf.chartWidth, "chart-width", chart.DefaultOptions().Width, "Chart width in pixels")
	f.IntVar(&rf.chartHeight, "chart-height", chart.DefaultOptions().Height, "Chart height in pixels")
	f.StringVar(&rf.chartColor, "chart-color", chart.DefaultOptions().Color, "Profile color as #RRGGBB")
	f.StringVar(&rf.title, "title", chart.DefaultTitle, "Chart title")
	f.BoolVar(&rf.strict, "strict", false, "Reject item numbers outside 1-72 and ratings outside 1-5")
	f.BoolVar(&rf.noColor, "no-color", false, "Disable colored text output")
	f.BoolVar(&rf.verbose, "verbose", false, "Print processing steps to stderr")

	var af axesFlags
	axesCmd := &cobra.Command{
		Use:   "axes",
		Short: "Print or compare the active axis configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newSettings(cmd, configFile)
			if err != nil {
				return codeError(exitInput, "%s", err)
			}
			af.resolve(v)
			return runAxes(af)
		},
	}
	f = axesCmd.Flags()
	f.StringVar(&af.axesFile, "axes", "", "YAML instrument file (default: built-in NYOTA instrument)")
	f.BoolVar(&af.diff, "diff", false, "Show differences from the built-in instrument")
	f.StringVar(&af.patchOut, "patch-out", "", "Write the difference in diff-match-patch format to this file")
	f.BoolVar(&af.verbose, "verbose", false, "Print processing steps to stderr")

	root.AddCommand(reportCmd, axesCmd)
	return root
}

func runReport(responsesPath string, flags reportFlags) error {
	// --- Step 1: Validate flags ---
	chartOpts, err := validateFlags(flags)
	if err != nil {
		return codeError(exitInput, "invalid flags: %s", err)
	}

	// --- Step 2: Load instrument ---
	cfg, err := loadInstrument(flags.axesFile, flags.verbose)
	if err != nil {
		return codeError(exitInput, "%s", err)
	}

	// --- Step 3: Load responses ---
	logVerbose(flags.verbose, "Loading responses: %s", responsesPath)
	file, err := responses.Load(responsesPath)
	if err != nil {
		return codeError(exitInput, "loading responses: %s", err)
	}
	logVerbose(flags.verbose, "%d responses loaded", len(file.Raw))

	if flags.strict {
		if err := validate.Responses(file.Raw); err != nil {
			return codeError(exitInput, "invalid responses: %s", err)
		}
	}
	if missing := validate.Complete(file.Raw); len(missing) > 0 {
		logVerbose(flags.verbose, "%d of %d items unanswered", len(missing), schema.ItemCount)
	}

	// --- Step 4: Score ---
	result, err := scoring.ComputeAll(cfg, file.Raw)
	if err != nil {
		var missing *scoring.MissingResponseError
		if errors.As(err, &missing) {
			return codeError(exitMissing, "%s", missing)
		}
		return codeError(1, "scoring: %s", err)
	}

	report := &schema.Report{
		Tool:    "nyota",
		Version: version,
		Input: schema.Input{
			ResponsesFile: responsesPath,
			ResponsesHash: file.Hash,
			ResponseCount: len(file.Raw),
			Instrument:    cfg.Name(),
			AxesFile:      flags.axesFile,
			Strict:        flags.strict,
		},
		Summary: scoring.Summarize(result),
		Scores:  result,
	}

	// --- Step 5: Render output ---
	logVerbose(flags.verbose, "Rendering output (format: %s)", flags.format)
	colored := flags.out == "" && !flags.noColor && !color.NoColor
	renderer, err := render.NewRenderer(flags.format, colored)
	if err != nil {
		return codeError(exitInput, "invalid format: %s", err)
	}
	outputBytes, err := renderer.Render(report)
	if err != nil {
		return codeError(exitInput, "rendering output: %s", err)
	}
	if err := writeOutput(flags.out, outputBytes); err != nil {
		return codeError(exitInput, "%s", err)
	}

	// --- Step 6: Radar chart ---
	if flags.chartPath != "" {
		logVerbose(flags.verbose, "Drawing radar chart → %s", flags.chartPath)
		if err := chart.Save(flags.chartPath, result, chartOpts); err != nil {
			return codeError(exitChart, "drawing chart: %s", err)
		}
		fmt.Fprintf(os.Stderr, "Chart saved: %s\n", flags.chartPath)
	}

	return nil
}

func runAxes(flags axesFlags) error {
	cfg, err := loadInstrument(flags.axesFile, flags.verbose)
	if err != nil {
		return codeError(exitInput, "%s", err)
	}
	logVerbose(flags.verbose, "Instrument %s: %d axes, %d item lookups", cfg.Name(), cfg.Len(), cfg.ItemCount())

	current, err := axes.Encode(cfg)
	if err != nil {
		return codeError(exitInput, "%s", err)
	}

	if !flags.diff && flags.patchOut == "" {
		return writeOutput("", current)
	}

	base, err := axes.Encode(axes.Default())
	if err != nil {
		return codeError(exitInput, "%s", err)
	}

	if flags.patchOut != "" {
		logVerbose(flags.verbose, "Writing patch → %s", flags.patchOut)
		if err := os.WriteFile(flags.patchOut, []byte(patch.Text(string(base), string(current))), 0o644); err != nil {
			return codeError(exitInput, "writing patch file: %s", err)
		}
	}

	if flags.diff {
		diff := patch.Lines(axes.DefaultName, string(base), cfg.Name(), string(current))
		if diff == "" {
			fmt.Fprintln(os.Stdout, "No differences from the built-in instrument.")
			return nil
		}
		return writeOutput("", []byte(diff))
	}
	return nil
}

// loadInstrument returns the YAML instrument at path, or the built-in one when
// path is empty. Configuration warnings are always printed.
func loadInstrument(path string, verbose bool) (*axes.Config, error) {
	var (
		cfg *axes.Config
		err error
	)
	if path == "" {
		logVerbose(verbose, "Using built-in instrument: %s", axes.DefaultName)
		cfg, err = axes.Get(axes.DefaultName)
	} else {
		logVerbose(verbose, "Loading instrument: %s", path)
		cfg, err = axes.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading instrument: %w", err)
	}
	for _, w := range cfg.Warnings() {
		logWarn("%s", w)
	}
	return cfg, nil
}

// validateFlags checks flag values and derives the chart options.
func validateFlags(flags reportFlags) (chart.Options, error) {
	switch flags.format {
	case "text", "json", "md":
	default:
		return chart.Options{}, fmt.Errorf("--format must be text, json or md, got %q", flags.format)
	}

	opts := chart.DefaultOptions()
	opts.Width = flags.chartWidth
	opts.Height = flags.chartHeight
	opts.Color = flags.chartColor
	opts.Title = flags.title

	if flags.chartPath == "" {
		if flags.chartFormat != "" {
			return chart.Options{}, fmt.Errorf("--chart-format requires --chart")
		}
		return opts, nil
	}

	if flags.chartFormat != "" {
		opts.Format = chart.Format(flags.chartFormat)
	} else {
		f, err := chart.FormatFromPath(flags.chartPath)
		if err != nil {
			return chart.Options{}, err
		}
		opts.Format = f
	}
	if err := opts.Validate(); err != nil {
		return chart.Options{}, err
	}
	return opts, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path != "" {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		return nil
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	// Ensure output ends with a newline for terminal friendliness.
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

var (
	infoPrefix = color.New(color.FgCyan).SprintFunc()
	warnPrefix = color.New(color.FgYellow).SprintFunc()
)

// logVerbose writes an INFO line to stderr when verbose mode is enabled.
func logVerbose(verbose bool, format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, infoPrefix("INFO:")+" "+format+"\n", args...)
	}
}

// logWarn writes a WARN line to stderr.
func logWarn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, warnPrefix("WARN:")+" "+format+"\n", args...)
}
