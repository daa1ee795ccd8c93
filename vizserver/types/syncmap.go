package types

import (
	"sort"
	"sync"
)

type SyncMap struct {
	data map[string]interface{}
	lock *sync.RWMutex
}

func NewSyncMap() *SyncMap {
	return &SyncMap{
		data: make(map[string]interface{}),
		lock: &sync.RWMutex{},
	}
}

func (wmap *SyncMap) GetGeneric(id string) interface{} {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	return wmap.data[id]
}

func (wmap *SyncMap) Set(id string, item interface{}) {
	wmap.lock.Lock()
	wmap.data[id] = item
	wmap.lock.Unlock()
}

func (wmap *SyncMap) Remove(id string) {
	wmap.lock.Lock()
	delete(wmap.data, id)
	wmap.lock.Unlock()
}

func (wmap *SyncMap) Size() int {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	return len(wmap.data)
}

// ToArrayGeneric lists the items ordered by id
func (wmap *SyncMap) ToArrayGeneric() []interface{} {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	ids := make([]string, 0, len(wmap.data))
	for id := range wmap.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	res := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		res = append(res, wmap.data[id])
	}

	return res
}
