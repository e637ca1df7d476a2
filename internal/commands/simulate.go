package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ledgersim-dev/ledgersim/internal/config"
	"github.com/ledgersim-dev/ledgersim/internal/economy"
	"github.com/ledgersim-dev/ledgersim/internal/engine"
	"github.com/ledgersim-dev/ledgersim/internal/logging"
	"github.com/ledgersim-dev/ledgersim/internal/report"
)

func newSimulateCommand() *cobra.Command {
	var (
		modeStr    string
		years      int
		reserve    float64
		surplus    float64
		configPath string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a monthly simulation and print balance sheets and indicators",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := economy.ParseMode(modeStr)
			if err != nil {
				return err
			}

			cfg := config.Default()
			if _, statErr := os.Stat(configPath); statErr == nil {
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			if years == 0 {
				years = cfg.Run.CreditYears
				if mode == economy.ModeFiat {
					years = cfg.Run.FiatYears
				}
			}

			return runSimulate(cmd, mode, cfg, years, reserve, surplus, outPath)
		},
	}

	cmd.Flags().StringVar(&modeStr, "mode", "credit", "economy mode: credit or fiat")
	cmd.Flags().IntVar(&years, "years", 0, "years to simulate (default from config)")
	cmd.Flags().Float64Var(&reserve, "reserve", 0, "required bank reserves (credit mode policy)")
	cmd.Flags().Float64Var(&surplus, "surplus", 0, "annual budget surplus, negative for deficit (fiat mode policy)")
	cmd.Flags().StringVar(&configPath, "config", "ledgersim.yaml", "config file path")
	cmd.Flags().StringVar(&outPath, "out", "", "write indicator CSV to a file instead of stdout")

	return cmd
}

func runSimulate(cmd *cobra.Command, mode economy.Mode, cfg *config.Config, years int, reserve, surplus float64, outPath string) error {
	log := logging.New(cfg.Logging)

	econ, err := economy.New(mode, cfg)
	if err != nil {
		return err
	}
	runner := engine.NewRunner(engine.New(econ, cfg), log)

	// Ctrl-C stops cooperatively at the next period boundary.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx, engine.RunSpec{
		Periods:         years * 12,
		RequiredReserve: reserve,
		AnnualSurplus:   surplus,
	}); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, actor := range econ.Actors() {
		if err := report.WriteBalanceSheet(out, econ.Sheet(actor)); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	csvOut := out
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		csvOut = f
	}
	if mode == economy.ModeCredit {
		return report.WriteCreditCSV(csvOut, econ.CreditIndicators)
	}
	return report.WriteFiatCSV(csvOut, econ.FiatIndicators)
}
