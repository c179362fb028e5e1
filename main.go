package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"swallowtail/registrar"
	"swallowtail/state"
)

func main() {
	if len(os.Args) < 2 {
		os.Args = append(os.Args, "help")
	}

	switch os.Args[1] {
	case "sync":
		state.Setup()

		builders, err := registrar.Build(state.Config.Commands)

		if err != nil {
			state.Logger.Fatal("Error building commands from config", zap.Error(err))
		}

		err = state.Registrar.Sync(state.Context, state.Config.Meta.GuildID, builders)

		if err != nil {
			state.Logger.Fatal("Error syncing commands", zap.Error(err))
		}

		state.Logger.Info("Command sync complete", zap.Int("commands", len(builders)))
	case "list":
		state.Setup()

		commands, err := state.Client.GetCommands(state.Context, state.Config.Meta.GuildID)

		if err != nil {
			state.Logger.Fatal("Error fetching commands", zap.Error(err))
		}

		for _, cmd := range commands {
			fmt.Println(cmd.String(), "-", cmd.Description())

			for _, opt := range cmd.Options() {
				fmt.Println("  ", opt.Name(), "["+opt.Type().String()+"]", "-", opt.Description())
			}
		}
	case "help":
		usage()
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Swallowtail Usage: swallowtail <command>")
	fmt.Println("sync: Syncs the commands declared in config.yaml with Discord")
	fmt.Println("list: Lists the commands currently registered with Discord")
}
