package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/qif/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion answers shell completion requests and returns immediately
// otherwise.
func completion() {
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"f":           predict.Files("*.qif"),
			"date-layout": predict.Nothing,
			"v":           predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"accounts": {},
			"tx":       {},
			"cat":      {},
			"summary":  {},
			"fmt":      {},
			"export":   {},
			"topic":    {},
		},
	}
	c.Complete("qcs")
}
