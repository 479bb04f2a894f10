package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"gopkg.in/urfave/cli.v2"

	"hexagony/debugger"
	"hexagony/engine"
	"hexagony/program"
)

func main() {
	defer glog.Flush()

	app := &cli.App{
		Name:    "hexagony",
		Usage:   "run or debug a Hexagony program",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "break before every instruction in an interactive debugger",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Args().Len() != 1 {
		cli.ShowAppHelp(c)
		return cli.Exit("exactly one source file argument is required", 86)
	}

	path := c.Args().Get(0)
	f, err := os.Open(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer f.Close()

	g, err := program.Load(f)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	glog.V(1).Infof("hexagony: loaded %s as side-%d hexagon", path, g.Side())

	e := engine.New(g, os.Stdin, os.Stdout)
	if c.Bool("debug") {
		e.Debugger = &debugger.TUI{}
		e.ForceDebug = true
	}

	if err := e.Run(); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
