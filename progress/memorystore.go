package progress

type memoryBackend map[string][]byte

func (m memoryBackend) get(key string) ([]byte, bool, error) {
	value, ok := m[key]
	return value, ok, nil
}

func (m memoryBackend) set(key string, value []byte) error {
	m[key] = value
	return nil
}

// MemoryStore keeps progress for the lifetime of the process
type MemoryStore struct {
	kvStore
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		kvStore: makeKVStore(make(memoryBackend)),
	}
}
