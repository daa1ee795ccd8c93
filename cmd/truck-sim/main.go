package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/truckmayhem/truckmayhem/common/utils"
	"github.com/truckmayhem/truckmayhem/config"
	"github.com/truckmayhem/truckmayhem/progress"
	"github.com/urfave/cli"
	bettererrors "github.com/xtuc/better-errors"
)

const (
	envProgressFile = "TRUCKSIM_PROGRESS_FILE"
	envConfigFile   = "TRUCKSIM_CONFIG"
)

func main() {
	// a missing .env is fine
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("Could not load .env: " + err.Error())
	}

	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		utils.FailWith(err)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "truck-sim"
	app.Usage = "Headless monster truck runs"
	app.Version = utils.GetVersion()

	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Value: "", Usage: "JSON file overriding the default tuning", EnvVar: envConfigFile},
		cli.StringFlag{Name: "progress-file", Value: "", Usage: "Progress file; defaults next to the executable", EnvVar: envProgressFile},
	}

	app.Commands = []cli.Command{
		{
			Name:    "run",
			Aliases: []string{"r"},
			Usage:   "Drive a level",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "level", Value: 1, Usage: "Level to drive"},
				cli.IntFlag{Name: "max-ticks", Value: 60 * 180, Usage: "Stop the run after this many ticks"},
				cli.Int64Flag{Name: "seed", Value: 0, Usage: "Seed of the per-run randomness; 0 uses the clock"},
				cli.StringFlag{Name: "record-file", Value: "", Usage: "Destination file for recording the run"},
				cli.StringFlag{Name: "viz", Value: "", Usage: "Serve the run to viewers on this address (eg :8080)"},
				cli.BoolFlag{Name: "manual", Usage: "Only hold forward instead of using the autopilot"},
				cli.BoolFlag{Name: "force", Usage: "Drive a level that is not unlocked yet"},
				cli.BoolFlag{Name: "no-save", Usage: "Do not record the result in the progress file"},
				cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
			},
			Action: func(c *cli.Context) error {
				gameconfig, err := loadConfig(c.GlobalString("config"))
				if err != nil {
					return err
				}

				return runAction(runOptions{
					config:     gameconfig,
					store:      openStore(c.GlobalString("progress-file")),
					levelID:    c.Int("level"),
					maxTicks:   c.Int("max-ticks"),
					seed:       c.Int64("seed"),
					recordFile: c.String("record-file"),
					vizAddr:    c.String("viz"),
					manual:     c.Bool("manual"),
					force:      c.Bool("force"),
					save:       !c.Bool("no-save"),
					debug:      c.Bool("debug"),
				})
			},
		},
		{
			Name:    "levels",
			Aliases: []string{"l"},
			Usage:   "List the levels with their best scores",
			Action: func(c *cli.Context) error {
				return levelsAction(openStore(c.GlobalString("progress-file")))
			},
		},
		{
			Name:  "progress",
			Usage: "Show the saved progress",
			Action: func(c *cli.Context) error {
				return progressAction(openStore(c.GlobalString("progress-file")))
			},
			Subcommands: []cli.Command{
				{
					Name:      "palette",
					Usage:     "Select an unlocked palette",
					ArgsUsage: "<palette id>",
					Action: func(c *cli.Context) error {
						return selectPaletteAction(openStore(c.GlobalString("progress-file")), c.Args().First())
					},
				},
			},
		},
		{
			Name:  "replay",
			Usage: "Read back a recorded run",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "file", Value: "", Usage: "Record archive; required"},
				cli.StringFlag{Name: "viz", Value: "", Usage: "Serve the replay to viewers on this address (eg :8080)"},
				cli.IntFlag{Name: "every", Value: 60, Usage: "Print one tick out of every n"},
			},
			Action: func(c *cli.Context) error {
				return replayAction(c.String("file"), c.String("viz"), c.Int("every"))
			},
		},
	}

	return app
}

func loadConfig(filename string) (config.GameConfig, error) {
	if filename == "" {
		return config.Default(), nil
	}

	return config.Load(filename)
}

func openStore(filename string) *progress.FileStore {
	if filename == "" {
		filename = progress.DefaultPath()
	}

	return progress.NewFileStore(filename)
}

// storeError turns a store failure into an error FailWith can print
func storeError(err error) error {
	return bettererrors.
		New("Progress store failure").
		With(bettererrors.NewFromErr(err))
}
