package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gostream-official/tracks/impl/inject"
	"github.com/gostream-official/tracks/impl/routes"
	"github.com/gostream-official/tracks/pkg/env"

	"github.com/revx-official/output/log"
	"github.com/spf13/cobra"
)

// Description:
//
//	The package initializer function.
//	Initializes the log level to info.
func init() {
	log.Level = log.LevelInfo
}

// Description:
//
//	Resolves the default port from the PORT environment variable.
//
// Returns:
//
//	The port, or an error if PORT is not a valid port number.
func defaultPort() (int, error) {
	raw := env.GetEnvironmentVariableWithFallback("PORT", "3000")

	port, err := strconv.Atoi(raw)
	if err != nil || port < 0 || port > 65535 {
		return 0, fmt.Errorf("invalid PORT value %q", raw)
	}

	return port, nil
}

// Description:
//
//	Creates the root command that boots the service.
//
// Parameters:
//
//	fallbackPort The port used when --port is not given.
//
// Returns:
//
//	The root command.
func newRootCommand(fallbackPort int) *cobra.Command {
	var port int

	command := &cobra.Command{
		Use:           "tracks",
		Short:         "Serves the weird music tracks API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Infof("booting service instance ...")

			injector := inject.NewInjector()
			log.Infof("track store ready with %d seed tracks", injector.TrackStore.Count())

			log.Infof("launching router engine ...")
			engine := routes.NewEngine(injector)

			return engine.Run(port)
		},
	}

	command.Flags().IntVarP(&port, "port", "p", fallbackPort, "port to listen on (env PORT)")
	return command
}

// Description:
//
//	The main function.
//	Represents the entry point of the application.
func main() {
	if err := env.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load environment: %s", err)
	}

	port, err := defaultPort()
	if err != nil {
		log.Fatalf("%s", err)
	}

	command := newRootCommand(port)
	if err := command.Execute(); err != nil {
		log.Errorf("failed to launch router engine: %s", err)
		os.Exit(1)
	}
}
