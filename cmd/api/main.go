package main

import (
	"os"

	"github.com/ltlab/internship-portal/internal/pkg/logger"
	"github.com/ltlab/internship-portal/internal/server"
)

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Configuration and bootstrap failures are fatal; details were logged
		// where they happened.
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
