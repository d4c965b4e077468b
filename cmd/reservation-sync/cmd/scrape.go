package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ktourstory/reservation-sync/internal/runner"
	"github.com/ktourstory/reservation-sync/pkg/config"
)

var targetDay string

// scrapeCmd represents the scrape command.
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape reservations and reconcile them into the sheet",
	Long: `Scrape reservation records from the booking dashboard and reconcile
them against the Google Sheets store.

This command:
1. Launches a headless browser and logs into the dashboard
2. Iterates the target dates (one day, or today through month end)
3. Extracts reservation records with derived prices
4. Appends only unseen reservations to the sheet
5. Posts a daily summary to Slack

Example:
  reservation-sync scrape
  reservation-sync scrape --day 14`,
	Run: runScrape,
}

func init() {
	scrapeCmd.Flags().StringVar(&targetDay, "day", "", "Day of current month to scrape (default: today through month end)")
}

func runScrape(cmd *cobra.Command, args []string) {
	slog.Info("Starting scrape", "day", targetDay)

	// Load configuration
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")
	exitOnError(cfg.Validate(), "invalid configuration")

	// DEBUG=true in the environment enables debug logging without the flag.
	if cfg.Debug && !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	err = runner.Run(context.Background(), cfg, targetDay)
	exitOnError(err, "scrape run failed")

	slog.Info("Scrape finished")
}
