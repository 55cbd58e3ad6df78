package command

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Katikatikou/P6-DATAARCHITECT/pkg/collector"
	"github.com/Katikatikou/P6-DATAARCHITECT/pkg/config"
	"github.com/Katikatikou/P6-DATAARCHITECT/pkg/logger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Continuously insert local CPU usage into the cpu_data hypertable",
	Run: func(cmd *cobra.Command, args []string) {
		runCollect()
	},
}

func runCollect() {
	settings := config.LoadConfig()
	config.InitSettings(settings)
	logger.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := collector.New(settings)
	if err := c.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Collector stopped with an error")
		os.Exit(1)
	}

	log.Debug().Msg("Bye.")
}
