package types

type WatcherMap struct {
	*SyncMap
}

func NewWatcherMap() *WatcherMap {
	return &WatcherMap{
		NewSyncMap(),
	}
}

func (wmap *WatcherMap) Get(id string) *Watcher {
	if res, ok := (wmap.GetGeneric(id)).(*Watcher); ok {
		return res
	}

	return nil
}

type VizRunMap struct {
	*SyncMap
}

func NewVizRunMap() *VizRunMap {
	return &VizRunMap{
		NewSyncMap(),
	}
}

func (rmap *VizRunMap) Get(id string) *VizRun {
	if res, ok := (rmap.GetGeneric(id)).(*VizRun); ok {
		return res
	}

	return nil
}

func (rmap *VizRunMap) ToArray() []*VizRun {
	res := make([]*VizRun, 0)
	for _, item := range rmap.ToArrayGeneric() {
		if run, ok := item.(*VizRun); ok {
			res = append(res, run)
		}
	}

	return res
}
