package recording

import (
	"archive/zip"
	"encoding/json"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
)

// Replayer reads back an archive written by FileRecorder
type Replayer struct {
	filename string
	metadata RecordMetadata

	zip     *zip.ReadCloser
	record  io.ReadCloser
	decoder *msgpack.Decoder
}

func NewReplayer(filename string) (*Replayer, error) {
	reader, err := zip.OpenReader(filename)
	if err != nil {
		return nil, errors.Wrap(err, "could not open record archive "+filename)
	}

	r := &Replayer{
		filename: filename,
		zip:      reader,
	}

	hasMetadata := false
	for _, file := range reader.File {
		switch file.Name {
		case metadataEntryName:
			if err := r.readMetadata(file); err != nil {
				reader.Close()
				return nil, err
			}
			hasMetadata = true

		case recordEntryName:
			fd, err := file.Open()
			if err != nil {
				reader.Close()
				return nil, errors.Wrap(err, "could not open Record")
			}

			r.record = fd
			r.decoder = msgpack.NewDecoder(fd)
		}
	}

	if !hasMetadata || r.record == nil {
		r.Close()
		return nil, errors.New("invalid record archive " + filename)
	}

	return r, nil
}

func (r *Replayer) readMetadata(file *zip.File) error {
	fd, err := file.Open()
	if err != nil {
		return errors.Wrap(err, "could not open RecordMetadata")
	}
	defer fd.Close()

	data, err := ioutil.ReadAll(fd)
	if err != nil {
		return errors.Wrap(err, "could not read RecordMetadata")
	}

	return errors.Wrap(json.Unmarshal(data, &r.metadata), "invalid RecordMetadata")
}

func (r *Replayer) GetMetadata() RecordMetadata {
	return r.metadata
}

// Next decodes the next tick; io.EOF marks the end of the record
func (r *Replayer) Next() (*Entry, error) {
	var entry Entry
	if err := r.decoder.Decode(&entry); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}

		return nil, errors.Wrap(err, "could not decode record entry")
	}

	return &entry, nil
}

// Read streams the ticks; the channel is closed at the end of the record
// or on the first error, available from the error channel
func (r *Replayer) Read() (<-chan *Entry, <-chan error) {
	entries := make(chan *Entry)
	errs := make(chan error, 1)

	go func() {
		defer close(entries)
		defer close(errs)

		for {
			entry, err := r.Next()
			if err == io.EOF {
				return
			}

			if err != nil {
				errs <- err
				return
			}

			entries <- entry
		}
	}()

	return entries, errs
}

func (r *Replayer) Close() error {
	if r.record != nil {
		r.record.Close()
	}

	return r.zip.Close()
}
