// Command ratingsync refreshes professor rating distributions from their
// RateMyProfessors pages and prints a summary table. It shares the server's
// configuration, so DB_* and RATINGS_* environment variables apply.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	appRepos "github.com/okan/courseatlas/internal/app/repositories"
	appServices "github.com/okan/courseatlas/internal/app/services"
	"github.com/okan/courseatlas/internal/config"
	"github.com/okan/courseatlas/internal/db"
	"github.com/okan/courseatlas/internal/pkg/helpers"
	"github.com/okan/courseatlas/internal/pkg/logger"
	"github.com/okan/courseatlas/internal/pkg/rmp"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig(filepath.Join("configs", "config.yaml"))
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: true,
	})

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer database.Close()

	professorRepo := appRepos.NewProfessorRepository(database.Pool)
	client := rmp.NewClient(cfg.Ratings.BaseURL, helpers.ParseDuration(cfg.Ratings.RequestTimeout, 30*time.Second))
	professorService := appServices.NewProfessorService(professorRepo, client)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	color.Cyan("Syncing professor ratings...")
	start := time.Now()

	result, err := professorService.SyncRatings(ctx)
	if err != nil {
		color.Red("Rating sync failed: %v", err)
		os.Exit(1)
	}

	color.Green("Sync finished in %s", time.Since(start).Round(time.Second))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Synced", "Skipped", "Failed"})
	table.Append([]string{
		strconv.Itoa(result.Synced),
		strconv.Itoa(result.Skipped),
		strconv.Itoa(len(result.Failed)),
	})
	table.Render()

	if len(result.Failed) > 0 {
		color.Yellow("\nFailed professors:")
		failedTable := tablewriter.NewWriter(os.Stdout)
		failedTable.SetHeader([]string{"Name"})
		for _, name := range result.Failed {
			failedTable.Append([]string{name})
		}
		failedTable.Render()
		os.Exit(1)
	}
}
