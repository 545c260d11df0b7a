package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/fpgo/finance-projector/internal/calculation"
	"github.com/fpgo/finance-projector/internal/config"
	"github.com/fpgo/finance-projector/internal/output"
	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "fpgo",
	Short: "Household financial projection CLI",
	Long:  "Deterministic financial projection and comparison engine: amortization schedules, tax breakdowns, net-worth trajectories, strategy comparisons, and goal forecasts",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "fpgo %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// newEngine builds a calculation engine, attaching a zap logger when debug
// output is requested.
func newEngine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		zl, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		engine.SetLogger(zl.Sugar())
	}
	return engine
}

func loadConfig(path string) *config.Configuration {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file without computing anything",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		loadConfig(args[0])
		fmt.Println("Configuration is valid")
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [input-file]",
	Short: "Generate a loan amortization schedule",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(args[0])
		loanName, _ := cmd.Flags().GetString("loan")

		loan := cfg.FindLoan(loanName)
		if loan == nil {
			log.Fatalf("loan %q not found in configuration", loanName)
		}

		engine := newEngine(cmd)
		schedule, err := engine.BuildSchedule(loan.Terms, loan.Modification)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		every, _ := cmd.Flags().GetInt("every")
		sf := &output.ScheduleFormatter{Every: every}
		switch format {
		case "table":
			fmt.Print(sf.FormatTable(schedule))
		case "csv":
			s, err := sf.FormatCSV(schedule)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(s)
		case "json":
			s, err := output.FormatJSON(schedule)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(s)
		default:
			log.Fatalf("unsupported format: %s", format)
		}
	},
}

var taxCmd = &cobra.Command{
	Use:   "tax [input-file]",
	Short: "Compute a progressive tax breakdown for an income",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(args[0])
		incomeCents, _ := cmd.Flags().GetInt64("income-cents")

		engine := newEngine(cmd)
		result, err := engine.ComputeTax(money.Cents(incomeCents), cfg.TaxBrackets)
		if err != nil {
			log.Fatal(err)
		}
		printResult(cmd, result, func() string {
			return (&output.TaxFormatter{}).FormatTable(result)
		})
	},
}

var networthCmd = &cobra.Command{
	Use:   "networth [input-file]",
	Short: "Project the snapshot's net-worth trajectory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(args[0])
		years, _ := cmd.Flags().GetInt("years")

		engine := newEngine(cmd)
		proj, err := engine.ProjectNetWorth(&cfg.Snapshot, years*12)
		if err != nil {
			log.Fatal(err)
		}
		printResult(cmd, proj, func() string {
			var out string
			out += fmt.Sprintf("NET WORTH PROJECTION (%d years)\n", years)
			for _, p := range proj.Points {
				if p.Month%12 != 0 {
					continue
				}
				out += fmt.Sprintf("Year %2d: assets %s, liabilities %s, net worth %s\n",
					p.Month/12, p.AssetsCents.Format(), p.LiabilitiesCents.Format(), p.NetWorthCents.Format())
			}
			return out
		})
	},
}

var goalCmd = &cobra.Command{
	Use:   "goal [input-file]",
	Short: "Evaluate goal progress and completion forecasts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(args[0])
		asOfFlag, _ := cmd.Flags().GetString("as-of")
		asOf := cfg.Snapshot.AsOf
		if asOfFlag != "" {
			parsed, err := time.Parse("2006-01-02", asOfFlag)
			if err != nil {
				log.Fatalf("invalid --as-of date %q: %v", asOfFlag, err)
			}
			asOf = parsed
		}

		engine := newEngine(cmd)
		flow := cfg.Snapshot.MonthlyNetCashFlowCents()
		gf := &output.GoalFormatter{}
		for _, gs := range cfg.Goals {
			summary, err := engine.EvaluateGoal(gs.Goal, flow, gs.AssumedReturnPercent, asOf)
			if err != nil {
				log.Fatal(err)
			}
			printResult(cmd, summary, func() string {
				return gf.FormatTable(gs.Goal.Name, summary)
			})
		}
	},
}

// printResult prints either the console rendering or JSON, per --format.
func printResult(cmd *cobra.Command, v any, table func() string) {
	format, _ := cmd.Flags().GetString("format")
	if format == "json" {
		s, err := output.FormatJSON(v)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(s)
		return
	}
	fmt.Print(table())
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	scheduleCmd.Flags().String("loan", "", "Name of the loan to amortize")
	scheduleCmd.Flags().String("format", "table", "Output format (table, csv, json)")
	scheduleCmd.Flags().Int("every", 12, "Show every Nth entry in the table (0 = all)")

	taxCmd.Flags().Int64("income-cents", 0, "Taxable income in integer cents")
	taxCmd.Flags().String("format", "table", "Output format (table, json)")

	networthCmd.Flags().Int("years", 10, "Projection horizon in years")
	networthCmd.Flags().String("format", "table", "Output format (table, json)")

	goalCmd.Flags().String("as-of", "", "Evaluation date (YYYY-MM-DD, default snapshot as_of)")
	goalCmd.Flags().String("format", "table", "Output format (table, json)")

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(taxCmd)
	rootCmd.AddCommand(networthCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(newCompareCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
