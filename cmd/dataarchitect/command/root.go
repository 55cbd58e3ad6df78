package command

import (
	"context"
	"fmt"
	"os"

	"github.com/Katikatikou/P6-DATAARCHITECT/pkg/config"
	"github.com/Katikatikou/P6-DATAARCHITECT/pkg/db"
	"github.com/Katikatikou/P6-DATAARCHITECT/pkg/demo"
	"github.com/Katikatikou/P6-DATAARCHITECT/pkg/logger"
	"github.com/Katikatikou/P6-DATAARCHITECT/pkg/version"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:     "dataarchitect",
	Short:   "TimescaleDB scaling, aggregation and compression demo",
	Version: version.Version,
	Run: func(cmd *cobra.Command, args []string) {
		runDemo()
	},
}

func init() {
	RootCmd.AddCommand(collectCmd)
}

func runDemo() {
	settings := config.LoadConfig()
	config.InitSettings(settings)
	logger.InitLogger()

	log.Info().Msgf("dataarchitect version %s starting.", version.Version)

	ctx := context.Background()

	conn, err := db.Connect(ctx, settings)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer func() { _ = conn.Close(ctx) }()

	fmt.Println("Connection successful!!!")

	runner := demo.NewRunner(conn, settings.Machines)
	if err := runner.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Demo run failed")
		_ = conn.Close(ctx)
		os.Exit(1)
	}

	log.Debug().Msg("Bye.")
}
