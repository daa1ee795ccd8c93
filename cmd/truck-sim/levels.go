package main

import (
	"fmt"
	"strings"

	"github.com/truckmayhem/truckmayhem/game/challenge"
	"github.com/truckmayhem/truckmayhem/game/levels"
	"github.com/truckmayhem/truckmayhem/progress"
	"github.com/ttacon/chalk"
	bettererrors "github.com/xtuc/better-errors"
)

func levelsAction(store progress.Store) error {
	scores, err := store.GetBestScores()
	if err != nil {
		return storeError(err)
	}

	for _, level := range levels.All() {
		unlocked, err := progress.IsLevelUnlocked(store, level.ID)
		if err != nil {
			return storeError(err)
		}

		best := scores[level.ID]
		stars := level.GetStars(best)

		line := fmt.Sprintf("%d. %-16s %-22s best %6d %s",
			level.ID,
			level.Name,
			level.Subtitle,
			best,
			strings.Repeat("*", stars)+strings.Repeat(".", 3-stars),
		)

		if unlocked {
			fmt.Println(line)
		} else {
			fmt.Println(chalk.Dim.TextStyle(line + " (locked)"))
		}
	}

	return nil
}

func progressAction(store *progress.FileStore) error {
	unlocked, err := store.GetUnlockedPalettes()
	if err != nil {
		return storeError(err)
	}

	selected, err := store.GetSelectedPalette()
	if err != nil {
		return storeError(err)
	}

	fmt.Println("progress file: " + store.GetFilename())
	fmt.Println("")

	if err := levelsAction(store); err != nil {
		return err
	}

	known := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		known[id] = true
	}

	fmt.Println("")
	for _, palette := range challenge.Palettes {
		mark := "   "
		if palette.ID == selected {
			mark = " > "
		}

		if known[palette.ID] {
			fmt.Println(mark + palette.ID + " " + palette.Name)
		} else {
			fmt.Println(chalk.Dim.TextStyle(mark + "??? (locked)"))
		}
	}

	return nil
}

func selectPaletteAction(store progress.Store, id string) error {
	unlocked, err := store.GetUnlockedPalettes()
	if err != nil {
		return storeError(err)
	}

	for _, known := range unlocked {
		if known == id {
			if err := store.SetSelectedPalette(id); err != nil {
				return storeError(err)
			}

			fmt.Println(chalk.Green.Color("palette " + id + " selected"))
			return nil
		}
	}

	return bettererrors.
		New("Palette is not unlocked").
		SetContext("palette", id)
}
