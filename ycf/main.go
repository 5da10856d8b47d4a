package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/sustena/footprint/cmd"
)

func main() {
	// Local overrides like YCF_DATA_DIR may live in a .env file.
	_ = godotenv.Load()

	sub := make(map[string]*complete.Command)
	for _, name := range cmd.CommandNames() {
		sub[name] = &complete.Command{}
	}
	sub["import"].Args = predict.Files("*.csv")
	completion := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data":  predict.Dirs("*"),
			"plain": predict.Nothing,
		},
	}
	completion.Complete("ycf")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
