// Package cmd implements the CLI application to manage a portfolio.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/etnz/folio"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&declareCmd{},
	&priceCmd{},
	&fetchCmd{},

	&buyCmd{},
	&sellCmd{},
	&dividendCmd{},
	&depositCmd{},
	&withdrawCmd{},
	&feeCmd{},

	&txCmd{},
	&rmCmd{},
	&holdingCmd{},
	&summaryCmd{},
	&exportCmd{},

	&editCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.
var appConfig *Config

// config loads the environment configuration once per process.
func config() *Config {
	if appConfig == nil {
		cfg, err := LoadConfig()
		if err != nil {
			log.Println("warning, bad configuration:", err)
		}
		appConfig = cfg
	}
	return appConfig
}

// LoadSession opens the configured portfolio file into a fresh session. A
// missing file is not an error: the session starts empty and the file is
// created on the first save.
func LoadSession() (*folio.Session, error) {
	cfg := config()
	s := folio.NewSession(cfg.Currency)
	if _, err := os.Stat(cfg.File); errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, portfolio file %q does not exist, starting empty", cfg.File)
		return s, nil
	}
	if err := s.Load(cfg.File); err != nil {
		return nil, fmt.Errorf("cannot load portfolio %q: %w", cfg.File, err)
	}
	return s, nil
}

// SaveSession writes the session back to the configured portfolio file.
func SaveSession(s *folio.Session) subcommands.ExitStatus {
	cfg := config()
	if err := s.Save(cfg.File); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio %q: %v\n", cfg.File, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// parseAmount parses a decimal command line argument.
func parseAmount(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %v", name, value, err)
	}
	return d, nil
}

// parseDay parses a -d flag, defaulting to today when empty.
func parseDay(value string) (folio.Date, error) {
	if value == "" {
		return folio.Today(), nil
	}
	return folio.ParseDate(value)
}
