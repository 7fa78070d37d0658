package main

import (
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "sway-backgrounds"
	app.Usage = "Set a different random wallpaper on every output"
	app.ArgsUsage = "[base-path]"
	app.Flags = setFlags()
	app.Action = setAction

	err := app.Run(os.Args)
	checkErr(err)
}

func checkErr(err error) {
	if err != nil {
		// Joined errors would otherwise span several lines
		log.Println(strings.ReplaceAll(err.Error(), "\n", "; "))
		os.Exit(1)
	}
}
