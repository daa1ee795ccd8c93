package recording

import (
	"io"
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truckmayhem/truckmayhem/common/utils/vector"
	"github.com/truckmayhem/truckmayhem/game/mayhem"
)

func tempFilename(t *testing.T) string {
	t.Helper()

	dir, err := ioutil.TempDir("", "truck-sim-recording")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	return path.Join(dir, "run.zip")
}

func frame(tick int) mayhem.Frame {
	return mayhem.Frame{
		RunID:   "run",
		LevelID: 2,
		Tick:    tick,
		Truck: mayhem.TruckFrame{
			Position: vector.MakeVector2(float64(tick)*10, 420),
			Health:   100,
		},
		Objects: []mayhem.FrameObject{
			{ID: "7", Kind: "Destructible", Type: "CRATE", Position: vector.MakeVector2(600, 486), Width: 28, Height: 28},
		},
		Water: []mayhem.WaterFrame{},
	}
}

func TestRecordAndReplay(t *testing.T) {
	filename := tempFilename(t)
	recorder := MakeFileRecorder(filename)

	require.NoError(t, recorder.RecordMetadata("run", 2))
	for tick := 1; tick <= 3; tick++ {
		events := []mayhem.Event{}
		if tick == 2 {
			events = append(events, mayhem.Event{Kind: mayhem.EventCollectibleCollected, Tick: tick, Points: 100})
		}
		require.NoError(t, recorder.Record(frame(tick), events))
	}
	assert.Equal(t, 3, recorder.CountEntries())
	require.NoError(t, recorder.Close())
	require.NoError(t, recorder.Close())
	assert.Error(t, recorder.Record(frame(4), nil))

	replayer, err := NewReplayer(filename)
	require.NoError(t, err)
	defer replayer.Close()

	metadata := replayer.GetMetadata()
	assert.Equal(t, recorder.GetID(), metadata.RecordID)
	assert.Equal(t, "run", metadata.RunID)
	assert.Equal(t, 2, metadata.LevelID)

	for tick := 1; tick <= 3; tick++ {
		entry, err := replayer.Next()
		require.NoError(t, err)
		assert.Equal(t, tick, entry.Frame.Tick)
		assert.True(t, entry.Frame.Truck.Position.Equals(vector.MakeVector2(float64(tick)*10, 420)))
		require.Len(t, entry.Frame.Objects, 1)
		assert.Equal(t, "CRATE", entry.Frame.Objects[0].Type)

		if tick == 2 {
			require.Len(t, entry.Events, 1)
			assert.Equal(t, mayhem.EventCollectibleCollected, entry.Events[0].Kind)
			assert.Equal(t, 100, entry.Events[0].Points)
		} else {
			assert.Empty(t, entry.Events)
		}
	}

	_, err = replayer.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReadStreamsEveryTick(t *testing.T) {
	filename := tempFilename(t)
	recorder := MakeFileRecorder(filename)
	require.NoError(t, recorder.RecordMetadata("run", 1))
	for tick := 1; tick <= 10; tick++ {
		require.NoError(t, recorder.Record(frame(tick), nil))
	}
	require.NoError(t, recorder.Close())

	replayer, err := NewReplayer(filename)
	require.NoError(t, err)
	defer replayer.Close()

	entries, errs := replayer.Read()
	ticks := make([]int, 0)
	for entry := range entries {
		ticks = append(ticks, entry.Frame.Tick)
	}

	assert.NoError(t, <-errs)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ticks)
}

func TestCloseWithoutMetadata(t *testing.T) {
	recorder := MakeFileRecorder(tempFilename(t))
	assert.Error(t, recorder.Close())
}

func TestInvalidArchive(t *testing.T) {
	filename := tempFilename(t)
	require.NoError(t, ioutil.WriteFile(filename, []byte("nope"), 0644))

	_, err := NewReplayer(filename)
	assert.Error(t, err)
}

func TestEmptyRecorder(t *testing.T) {
	var recorder Recorder = MakeEmptyRecorder()

	assert.NoError(t, recorder.RecordMetadata("run", 1))
	assert.NoError(t, recorder.Record(frame(1), nil))
	assert.NoError(t, recorder.Close())
}
