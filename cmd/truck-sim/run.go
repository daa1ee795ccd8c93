package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/truckmayhem/truckmayhem/common/recording"
	"github.com/truckmayhem/truckmayhem/common/utils"
	"github.com/truckmayhem/truckmayhem/config"
	simulation "github.com/truckmayhem/truckmayhem/game"
	"github.com/truckmayhem/truckmayhem/game/levels"
	"github.com/truckmayhem/truckmayhem/game/mayhem"
	"github.com/truckmayhem/truckmayhem/progress"
	"github.com/truckmayhem/truckmayhem/vizserver"
	"github.com/ttacon/chalk"
	bettererrors "github.com/xtuc/better-errors"
)

type runOptions struct {
	config     config.GameConfig
	store      progress.Store
	levelID    int
	maxTicks   int
	seed       int64
	recordFile string
	vizAddr    string
	manual     bool
	force      bool
	save       bool
	debug      bool
}

func runAction(opts runOptions) error {
	level, ok := levels.Get(opts.levelID)
	if !ok {
		return bettererrors.
			New("Unknown level").
			SetContext("level", strconv.Itoa(opts.levelID))
	}

	if !opts.force {
		unlocked, err := progress.IsLevelUnlocked(opts.store, level.ID)
		if err != nil {
			return storeError(err)
		}

		if !unlocked {
			return bettererrors.
				New("Level is locked; finish the previous level or use --force").
				SetContext("level", strconv.Itoa(level.ID))
		}
	}

	gameoptions := mayhem.DefaultOptions()
	gameoptions.Config = opts.config
	gameoptions.Debug = opts.debug
	if opts.seed != 0 {
		gameoptions.Clock = time.Unix(0, opts.seed)
	}

	game := mayhem.NewGame(level, gameoptions)
	defer game.Destroy()

	var recorder recording.Recorder = recording.MakeEmptyRecorder()
	if opts.recordFile != "" {
		recorder = recording.MakeFileRecorder(opts.recordFile)
	}

	if err := recorder.RecordMetadata(game.GetID(), level.ID); err != nil {
		return bettererrors.New("Could not start recording").With(bettererrors.NewFromErr(err))
	}

	tps := int(opts.config.Physics.TicksPerSecond)
	utils.Assert(tps > 0, "ticks per second must be at least 1")
	dt := time.Second / time.Duration(tps)

	var viz *vizserver.VizService
	var wait func()
	if opts.vizAddr != "" {
		viz = vizserver.NewVizService(opts.vizAddr)
		viz.Register(game, tps)
		viz.GetHealthCheck().Register("progress-store", func() error {
			_, err := opts.store.GetUnlockedLevels()
			return err
		})

		go func() {
			if err := viz.ListenAndServe(); err != nil {
				log.Println(chalk.Red.Color("Viz server stopped: " + err.Error()))
			}
		}()

		// viewers get the run in real time
		ticker := time.NewTicker(dt)
		defer ticker.Stop()
		wait = func() { <-ticker.C }
	}

	log.Println(chalk.Green.Color("Driving " + level.Name + " (run " + game.GetID() + ")"))

	err := driveRecorded(game, autopilot{manual: opts.manual}, recorder, dt, opts.maxTicks, wait, func(frame mayhem.Frame, events []mayhem.Event) {
		logEvents(events)

		if viz != nil {
			viz.Publish(frame, events)
		}
	})

	if err != nil {
		return err
	}

	result := game.Result()
	printResult(level, result)

	if !opts.save {
		return nil
	}

	record, err := progress.RecordRun(opts.store, result, game.GetChallengeManager())
	if err != nil {
		// the run itself went fine; only its bookkeeping is lost
		utils.WarnWith(storeError(err))
		return nil
	}

	printRecord(record)

	return nil
}

// driveRecorded drives sim to its end, recording every tick. The recorder
// is always closed; a close failure is returned unless the drive already
// failed, in which case it is only reported.
func driveRecorded(sim simulation.Simulation, pilot simulation.Pilot, recorder recording.Recorder, dt time.Duration, maxTicks int, wait func(), onTick func(frame mayhem.Frame, events []mayhem.Event)) (err error) {
	defer func() {
		closeErr := recorder.Close()
		if closeErr == nil {
			return
		}

		closeErr = bettererrors.New("Could not write record").With(bettererrors.NewFromErr(closeErr))
		if err == nil {
			err = closeErr
		} else {
			utils.WarnWith(closeErr)
		}
	}()

	return simulation.Drive(sim, pilot, dt, maxTicks, wait, func(frame mayhem.Frame, events []mayhem.Event) error {
		if err := recorder.Record(frame, events); err != nil {
			return bettererrors.New("Could not record tick").With(bettererrors.NewFromErr(err))
		}

		onTick(frame, events)
		return nil
	})
}
