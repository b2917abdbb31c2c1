// Command natal collects birth data and generates natal chart output.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/natal-cli/internal/adapters/driven/config/env"
	configfile "github.com/custodia-labs/natal-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/natal-cli/internal/adapters/driven/engine/summary"
	outputfile "github.com/custodia-labs/natal-cli/internal/adapters/driven/output/file"
	"github.com/custodia-labs/natal-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/natal-cli/internal/core/services"
	"github.com/custodia-labs/natal-cli/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := env.LoadDotEnv(); err != nil {
		logger.Warn("ignoring .env: %v", err)
	}

	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices wires the driven adapters into the core services.
func buildServices(configPath string) (*cli.Services, error) {
	fileStore, err := configfile.NewConfigStore(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	settings := services.NewSettingsService(env.NewConfigStore(fileStore))

	return &cli.Services{
		Profile:  services.NewProfileService(),
		Chart:    services.NewChartService(summary.New(), outputfile.NewOutputStore(), settings),
		Timezone: services.NewTimezoneService(),
		Settings: settings,
	}, nil
}
