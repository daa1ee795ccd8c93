package main

import (
	"fmt"
	"log"
	"time"

	"github.com/truckmayhem/truckmayhem/common/recording"
	"github.com/truckmayhem/truckmayhem/game/mayhem"
	"github.com/truckmayhem/truckmayhem/vizserver"
	"github.com/ttacon/chalk"
	bettererrors "github.com/xtuc/better-errors"
)

const replayTps = 60

func replayAction(filename string, vizAddr string, every int) error {
	if filename == "" {
		return bettererrors.New("Missing record archive; use --file")
	}

	if every <= 0 {
		every = 1
	}

	replayer, err := recording.NewReplayer(filename)
	if err != nil {
		return bettererrors.
			New("Could not open record").
			SetContext("file", filename).
			With(bettererrors.NewFromErr(err))
	}
	defer replayer.Close()

	metadata := replayer.GetMetadata()
	log.Println(chalk.Green.Color(fmt.Sprintf("Replaying run %s of level %d (%s)", metadata.RunID, metadata.LevelID, metadata.Date)))

	var viz *vizserver.VizService
	var ticker *time.Ticker
	if vizAddr != "" {
		viz = vizserver.NewVizService(vizAddr)
		go func() {
			if err := viz.ListenAndServe(); err != nil {
				log.Println(chalk.Red.Color("Viz server stopped: " + err.Error()))
			}
		}()

		ticker = time.NewTicker(time.Second / replayTps)
		defer ticker.Stop()
	}

	entries, errs := replayer.Read()
	registered := false
	var last *mayhem.Frame

	for entry := range entries {
		frame := entry.Frame

		if viz != nil {
			if !registered {
				viz.RegisterRun(frame.RunID, metadata.LevelID, "replay", replayTps)
				registered = true
			}

			<-ticker.C
			viz.Publish(frame, entry.Events)
		}

		if frame.Tick%every == 0 {
			fmt.Printf("tick %5d  x %8.1f  y %6.1f  health %5.1f  score %6d\n",
				frame.Tick,
				frame.Truck.Position.GetX(),
				frame.Truck.Position.GetY(),
				frame.Truck.Health,
				frame.Stats.Score,
			)
		}

		last = &frame
	}

	if err := <-errs; err != nil {
		return bettererrors.
			New("Could not read record").
			SetContext("file", filename).
			With(bettererrors.NewFromErr(err))
	}

	if last != nil {
		outcome := string(last.Outcome)
		if outcome == "" {
			outcome = "stopped"
		}
		fmt.Printf("end of record: %s, score %d after %d ticks\n", outcome, last.Stats.Score, last.Tick)
	}

	return nil
}
