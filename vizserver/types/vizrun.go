package types

import (
	"sync"

	"github.com/truckmayhem/truckmayhem/common/utils"
	"github.com/truckmayhem/truckmayhem/game/mayhem"
)

// VizMessage is pushed to the viewers for every published tick
type VizMessage struct {
	RunID  string         `json:"runId"`
	Frame  mayhem.Frame   `json:"frame"`
	Events []mayhem.Event `json:"events"`
}

type VizInitMessageData struct {
	RunID     string        `json:"runId"`
	LevelID   int           `json:"levelId"`
	LevelName string        `json:"levelName"`
	Tps       int           `json:"tps"`
	Frame     *mayhem.Frame `json:"frame,omitempty"`
}

type VizInitMessage struct {
	Type string             `json:"type"`
	Data VizInitMessageData `json:"data"`
}

type VizFrameMessage struct {
	Type string     `json:"type"`
	Data VizMessage `json:"data"`
}

// VizRun is a run viewers can attach to
type VizRun struct {
	id        string
	levelID   int
	levelName string
	tps       int
	pool      *WatcherMap

	lock *sync.RWMutex
	last *mayhem.Frame
}

func NewVizRun(id string, levelID int, levelName string, tps int) *VizRun {
	return &VizRun{
		id:        id,
		levelID:   levelID,
		levelName: levelName,
		tps:       tps,
		pool:      NewWatcherMap(),
		lock:      &sync.RWMutex{},
	}
}

func (run *VizRun) GetId() string {
	return run.id
}

func (run *VizRun) GetLevelID() int {
	return run.levelID
}

func (run *VizRun) GetName() string {
	return run.levelName
}

func (run *VizRun) GetTps() int {
	return run.tps
}

func (run *VizRun) SetLastFrame(frame mayhem.Frame) {
	run.lock.Lock()
	run.last = &frame
	run.lock.Unlock()
}

// GetLastFrame is nil until the first tick is published
func (run *VizRun) GetLastFrame() *mayhem.Frame {
	run.lock.RLock()
	defer run.lock.RUnlock()

	if run.last == nil {
		return nil
	}

	frame := *run.last
	return &frame
}

func (run *VizRun) SetWatcher(watcher *Watcher) {
	run.pool.Set(watcher.GetId(), watcher)

	initMsg := VizInitMessage{
		Type: "init",
		Data: VizInitMessageData{
			RunID:     run.id,
			LevelID:   run.levelID,
			LevelName: run.levelName,
			Tps:       run.tps,
			Frame:     run.GetLastFrame(),
		},
	}

	if err := watcher.WriteJSON(initMsg); err != nil {
		utils.Debug("viz-server", "Could not send VizInitMessage JSON; "+err.Error())
	}
}

func (run *VizRun) RemoveWatcher(watcherid string) {
	run.pool.Remove(watcherid)
}

func (run *VizRun) GetNumberWatchers() int {
	return run.pool.Size()
}
