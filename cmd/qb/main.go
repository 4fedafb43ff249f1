package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nhqb1010/qb-cli/internal/client"
	"github.com/nhqb1010/qb-cli/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := client.NewApp(os.Args[1:], models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	err := app.Run(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
