package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/2beens/playerprogress/internal/logs"
	"github.com/2beens/playerprogress/internal/progress"
)

// EnvPrefix prefixes the environment variables that may stand in for persistent flags,
// e.g. PROGRESS_REPORT_NO_COLOR=true.
const EnvPrefix = "PROGRESS_REPORT"

type options struct {
	file    string
	now     string
	json    bool
	noColor bool

	stdin  io.Reader
	stdout io.Writer
	// isTerminal decides on colors when --no-color is not given
	isTerminal bool
}

// NewRootCmd builds the progress_report command tree writing to stdout.
func NewRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	opts := &options{
		stdin:  stdin,
		stdout: stdout,
	}
	if f, ok := stdout.(*os.File); ok {
		opts.isTerminal = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	rootCmd := &cobra.Command{
		Use:   "progress_report",
		Short: "Progress reports from a player log export",
		Long: `progress_report reads a player log export
({"physical":[],"skill":[],"match":[],"practice":[]}) and prints the dashboard
summary, the achievement badges or monthly aggregates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("file", "f", "-", "Export file path, - for stdin")
	flags.String("now", "", "Reference day YYYY-MM-DD (default: today)")
	flags.Bool("json", false, "Output as JSON")
	flags.Bool("no-color", false, "Disable colored output")

	// flag > env > default
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("bind flags: %w", err)
		}
		opts.file = v.GetString("file")
		opts.now = v.GetString("now")
		opts.json = v.GetBool("json")
		opts.noColor = v.GetBool("no-color")
		return nil
	}

	rootCmd.AddCommand(
		newSummaryCmd(opts),
		newBadgesCmd(opts),
		newMonthlyCmd(opts),
	)
	return rootCmd
}

func newSummaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Dashboard summary: latest logs, totals, growth and streaks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := ReadExportFile(opts.file, opts.stdin)
			if err != nil {
				return err
			}
			now, err := opts.reference()
			if err != nil {
				return err
			}

			summary := progress.BuildSummary(in, now)
			if opts.json {
				return writeJSON(opts.stdout, summary)
			}
			return RenderSummary(opts.stdout, summary, opts.color())
		},
	}
}

func newBadgesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "Achievement badges and whether they are achieved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := ReadExportFile(opts.file, opts.stdin)
			if err != nil {
				return err
			}

			results := progress.Evaluate(progress.DefaultCatalog(), progress.Context{
				PracticeLogs: in.Practice,
				MatchLogs:    in.Match,
				SkillLogs:    in.Skill,
			})
			if opts.json {
				return writeJSON(opts.stdout, results)
			}
			return RenderBadges(opts.stdout, results, opts.color())
		},
	}
}

func newMonthlyCmd(opts *options) *cobra.Command {
	var (
		kind   string
		fields []string
	)

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Per-month sums and averages of one log kind",
		Example: `  progress_report monthly --kind physical --field height --field weight -f export.json
  progress_report monthly --kind match --json < export.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := logs.ParseKind(kind)
			if err != nil {
				return err
			}
			resolved, err := progress.ResolveFields(k, fields)
			if err != nil {
				return err
			}
			in, err := ReadExportFile(opts.file, opts.stdin)
			if err != nil {
				return err
			}

			buckets := progress.MonthlyOf(in, k, resolved)
			if opts.json {
				return writeJSON(opts.stdout, buckets)
			}
			return RenderMonthly(opts.stdout, k, resolved, buckets, opts.color())
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Log kind: physical, skill, match or practice")
	cmd.Flags().StringArrayVar(&fields, "field", nil, "Field to aggregate, repeatable (default: all fields of the kind)")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func (o *options) reference() (time.Time, error) {
	if o.now == "" {
		return time.Now(), nil
	}
	now, err := time.ParseInLocation(logs.DateLayout, o.now, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now [%s], expected YYYY-MM-DD", o.now)
	}
	return now, nil
}

func (o *options) color() bool {
	return !o.noColor && o.isTerminal
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
