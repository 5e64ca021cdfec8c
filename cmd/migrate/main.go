package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"todos/config"
	"todos/helper"
	"todos/shared/logger"
)

func main() {
	flags := pflag.NewFlagSet("migrate", pflag.ExitOnError)
	source := flags.String("source", helper.DefaultSource, "migration source URL")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: migrate [flags] up|down|step-up|drop\n\n")
		flags.PrintDefaults()
	}

	_ = flags.Parse(os.Args[1:])

	logger.InitLogger()

	if flags.NArg() != 1 || !helper.ValidAction(flags.Arg(0)) {
		flags.Usage()
		os.Exit(2)
	}

	cfg, err := config.Read()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.SetLogLevel(cfg)

	if err := helper.Runner(cfg, *source, flags.Arg(0)); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
