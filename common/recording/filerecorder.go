package recording

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/truckmayhem/truckmayhem/common/utils"
	"github.com/truckmayhem/truckmayhem/game/mayhem"
	"github.com/vmihailenco/msgpack"
)

// FileRecorder buffers a run in memory and writes it as a zip archive on
// Close: a JSON metadata entry and a stream of msgpack encoded ticks
type FileRecorder struct {
	id       uuid.UUID
	filename string
	metadata *RecordMetadata

	buffer  *bytes.Buffer
	encoder *msgpack.Encoder
	entries int
	closed  bool
}

func MakeFileRecorder(filename string) *FileRecorder {
	buffer := &bytes.Buffer{}

	return &FileRecorder{
		id:       uuid.Must(uuid.NewV4()),
		filename: filename,
		buffer:   buffer,
		encoder:  msgpack.NewEncoder(buffer),
	}
}

func (r *FileRecorder) GetID() string {
	return r.id.String()
}

func (r *FileRecorder) GetFilename() string {
	return r.filename
}

func (r *FileRecorder) CountEntries() int {
	return r.entries
}

func (r *FileRecorder) RecordMetadata(runID string, levelID int) error {
	metadata := makeRecordMetadata(r.id.String(), runID, levelID, utils.GetVersion())
	r.metadata = &metadata

	utils.Debug("FileRecorder", "created RecordMetadata for run "+runID)

	return nil
}

func (r *FileRecorder) Record(frame mayhem.Frame, events []mayhem.Event) error {
	if r.closed {
		return errors.New("recorder is closed")
	}

	if events == nil {
		events = make([]mayhem.Event, 0)
	}

	if err := r.encoder.Encode(Entry{Frame: frame, Events: events}); err != nil {
		return errors.Wrapf(err, "could not encode tick %d", frame.Tick)
	}

	r.entries++
	return nil
}

func (r *FileRecorder) Close() error {
	if r.closed {
		return nil
	}

	if r.metadata == nil {
		return errors.New("missing RecordMetadata")
	}

	r.closed = true

	metadata, err := json.Marshal(*r.metadata)
	if err != nil {
		return errors.Wrap(err, "could not serialize RecordMetadata")
	}

	files := []archiveFile{
		{Name: metadataEntryName, Body: metadata},
		{Name: recordEntryName, Body: r.buffer.Bytes()},
	}

	if err := makeArchive(r.filename, files); err != nil {
		return errors.Wrap(err, "could not create record archive")
	}

	utils.Debug("FileRecorder", "wrote record archive "+r.filename)

	return nil
}

type archiveFile struct {
	Name string
	Body []byte
}

func makeArchive(filename string, files []archiveFile) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer out.Close()

	archive := zip.NewWriter(out)
	for _, file := range files {
		w, err := archive.Create(file.Name)
		if err != nil {
			return err
		}

		if _, err := w.Write(file.Body); err != nil {
			return err
		}
	}

	if err := archive.Close(); err != nil {
		return err
	}

	return out.Sync()
}
