package recording

import (
	"time"

	"github.com/truckmayhem/truckmayhem/game/mayhem"
)

const (
	metadataEntryName = "RecordMetadata"
	recordEntryName   = "Record"
)

type RecordMetadata struct {
	RecordID string `json:"recordId"`
	RunID    string `json:"runId"`
	LevelID  int    `json:"levelId"`
	Date     string `json:"date"`
	Version  string `json:"version"`
}

// Entry is one recorded tick
type Entry struct {
	Frame  mayhem.Frame   `msgpack:"frame"`
	Events []mayhem.Event `msgpack:"events"`
}

type Recorder interface {
	RecordMetadata(runID string, levelID int) error
	Record(frame mayhem.Frame, events []mayhem.Event) error
	Close() error
}

func makeRecordMetadata(recordID string, runID string, levelID int, version string) RecordMetadata {
	return RecordMetadata{
		RecordID: recordID,
		RunID:    runID,
		LevelID:  levelID,
		Date:     time.Now().Format(time.RFC3339),
		Version:  version,
	}
}
