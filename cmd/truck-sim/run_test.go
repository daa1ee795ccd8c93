package main

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truckmayhem/truckmayhem/game/levels"
	"github.com/truckmayhem/truckmayhem/game/mayhem"
)

type countingRecorder struct {
	recordErr error
	closeErr  error
	records   int
	closes    int
}

func (r *countingRecorder) RecordMetadata(runID string, levelID int) error {
	return nil
}

func (r *countingRecorder) Record(frame mayhem.Frame, events []mayhem.Event) error {
	r.records++
	return r.recordErr
}

func (r *countingRecorder) Close() error {
	r.closes++
	return r.closeErr
}

func TestDriveRecordedAlwaysCloses(t *testing.T) {
	diskFull := errors.New("disk full")

	tests := []struct {
		name      string
		recordErr error
		closeErr  error
		wantErr   bool
		records   int
		ticks     int
	}{
		{"clean run", nil, nil, false, 10, 10},
		{"failing tick", diskFull, nil, true, 1, 0},
		{"failing close", nil, diskFull, true, 10, 10},
		{"failing tick and close", diskFull, diskFull, true, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := levels.Get(1)
			require.True(t, ok)

			game := mayhem.NewGame(level, mayhem.DefaultOptions())
			defer game.Destroy()

			recorder := &countingRecorder{recordErr: tt.recordErr, closeErr: tt.closeErr}

			ticks := 0
			err := driveRecorded(game, autopilot{}, recorder, time.Second/60, 10, nil, func(frame mayhem.Frame, events []mayhem.Event) {
				ticks++
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, 1, recorder.closes)
			assert.Equal(t, tt.records, recorder.records)
			assert.Equal(t, tt.ticks, ticks)
		})
	}
}
