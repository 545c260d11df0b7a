package main

import (
	"context"
	"fmt"
	"log"

	"github.com/fpgo/finance-projector/internal/compare"
	"github.com/fpgo/finance-projector/internal/output"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Run strategy and scenario comparisons",
	}

	mortgageCmd := &cobra.Command{
		Use:   "mortgage [input-file]",
		Short: "Compare paying extra principal against investing the difference",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig(args[0])
			if cfg.MortgageVsInvest == nil {
				log.Fatal("configuration has no mortgage_vs_invest section")
			}

			engine := newEngine(cmd)
			result, err := engine.CompareMortgageVsInvest(*cfg.MortgageVsInvest)
			if err != nil {
				log.Fatal(err)
			}
			printResult(cmd, result, func() string {
				return (&output.ComparisonFormatter{}).FormatMortgageVsInvest(result)
			})
		},
	}
	mortgageCmd.Flags().String("format", "table", "Output format (table, json)")

	rentbuyCmd := &cobra.Command{
		Use:   "rentbuy [input-file]",
		Short: "Compare owning against renting and investing the difference",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig(args[0])
			if cfg.RentVsBuy == nil {
				log.Fatal("configuration has no rent_vs_buy section")
			}

			engine := newEngine(cmd)
			result, err := engine.CompareRentVsBuy(cfg.RentVsBuy.Buy, cfg.RentVsBuy.Rent, cfg.RentVsBuy.HorizonYears)
			if err != nil {
				log.Fatal(err)
			}
			printResult(cmd, result, func() string {
				return (&output.ComparisonFormatter{}).FormatRentVsBuy(result)
			})
		},
	}
	rentbuyCmd.Flags().String("format", "table", "Output format (table, json)")

	scenariosCmd := &cobra.Command{
		Use:   "scenarios [input-file]",
		Short: "Compare what-if scenarios against the base snapshot",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig(args[0])
			scenarios, err := cfg.ResolvedScenarios()
			if err != nil {
				log.Fatal(err)
			}
			years, _ := cmd.Flags().GetInt("years")

			engine := compare.NewCompareEngine(newEngine(cmd))
			set, err := engine.Compare(context.Background(), &cfg.Snapshot, scenarios, years)
			if err != nil {
				log.Fatal(err)
			}

			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "table":
				fmt.Print((&compare.TableFormatter{}).Format(set))
			case "csv":
				s, err := (&compare.CSVFormatter{}).Format(set)
				if err != nil {
					log.Fatal(err)
				}
				fmt.Print(s)
			case "json":
				s, err := (&compare.JSONFormatter{}).Format(set)
				if err != nil {
					log.Fatal(err)
				}
				fmt.Println(s)
			default:
				log.Fatalf("unsupported format: %s", format)
			}
		},
	}
	scenariosCmd.Flags().Int("years", 10, "Comparison horizon in years")
	scenariosCmd.Flags().String("format", "table", "Output format (table, csv, json)")

	compareCmd.AddCommand(mortgageCmd, rentbuyCmd, scenariosCmd)
	return compareCmd
}
