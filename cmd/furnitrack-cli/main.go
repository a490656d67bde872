// furnitrack-cli prints a dashboard summary from a running FurniTrack
// server: per-employee earnings and assembled units, plus the overall
// totals. It exercises the same client and state store the views use.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"furnitrack/internal/client"
	"furnitrack/internal/state"
	"furnitrack/pkg/logging"
)

func main() {
	var (
		serverURL = flag.String("server", "http://localhost:3000", "FurniTrack server URL")
		email     = flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email for login")
		password  = flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password for login")
	)
	flag.Parse()

	logging.Setup()

	api := client.New(*serverURL)
	store := state.New(api)
	ctx := context.Background()

	if *email != "" {
		session, err := api.Login(ctx, *email, *password)
		if err != nil {
			slog.Error("Login failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Logged in", "name", session.Name)
	}

	if err := store.Refresh(ctx); err != nil {
		slog.Error("Failed to load data", "error", err)
		os.Exit(1)
	}
	if err := store.LoadSettings(ctx); err != nil {
		slog.Error("Failed to load settings", "error", err)
		os.Exit(1)
	}

	settings := store.Settings()
	fmt.Printf("%s (deduction %.1f%%)\n\n", settings.CompanyName, settings.DefaultPercentage)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EMPLOYEE\tPOSITION\tUNITS\tEARNINGS")
	for _, e := range store.Employees() {
		totals := store.EmployeeTotals(e.ID)
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\n", e.Name, e.Position, totals.TotalUnitsAssembled, totals.TotalEarnings)
	}
	w.Flush()

	earnings, units := store.OverallTotals()
	fmt.Printf("\n%d records, %d locations, %d units assembled, %.2f earned\n",
		len(store.Records()), len(store.Locations()), units, earnings)
}
