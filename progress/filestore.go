package progress

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"

	"github.com/kardianos/osext"
	"github.com/pkg/errors"
)

const DefaultFilename = "truck-sim-progress.json"

// fileBackend holds the whole document in one JSON object; every write
// rewrites the file through a temporary sibling
type fileBackend struct {
	filename string
}

func (f fileBackend) load() (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage)

	data, err := ioutil.ReadFile(f.filename)
	if os.IsNotExist(err) {
		return doc, nil
	}

	if err != nil {
		return nil, errors.Wrap(err, "could not read progress file "+f.filename)
	}

	if len(data) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "invalid JSON in progress file "+f.filename)
	}

	return doc, nil
}

func (f fileBackend) get(key string) ([]byte, bool, error) {
	doc, err := f.load()
	if err != nil {
		return nil, false, err
	}

	value, ok := doc[key]
	return value, ok, nil
}

func (f fileBackend) set(key string, value []byte) error {
	doc, err := f.load()
	if err != nil {
		return err
	}

	doc[key] = json.RawMessage(value)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode progress")
	}

	tmp := f.filename + ".tmp"
	if err := ioutil.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(err, "could not write progress file "+tmp)
	}

	return errors.Wrap(os.Rename(tmp, f.filename), "could not replace progress file "+f.filename)
}

// FileStore persists progress to a JSON file
type FileStore struct {
	kvStore
	filename string
}

func NewFileStore(filename string) *FileStore {
	return &FileStore{
		kvStore:  makeKVStore(fileBackend{filename: filename}),
		filename: filename,
	}
}

func (s *FileStore) GetFilename() string {
	return s.filename
}

// DefaultPath is the progress file next to the executable
func DefaultPath() string {
	exfolder, err := osext.ExecutableFolder()
	if err != nil {
		return DefaultFilename
	}

	return path.Join(exfolder, DefaultFilename)
}
