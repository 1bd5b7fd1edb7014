package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const defaultEnvFile = ".env"

// loadEnvFile exports the variables in path before configuration is read.
// Variables already set in the environment win. A missing file is only an
// error when the path was given explicitly.
func loadEnvFile(path string, explicit bool) error {
	err := godotenv.Load(path)
	switch {
	case err == nil:
		log.Debug().Str("path", path).Msg("environment file loaded")
		return nil
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
}
