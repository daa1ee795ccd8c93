package vizserver

import (
	"log"
	"net/http"
	"os"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/truckmayhem/truckmayhem/common/healthcheck"
	"github.com/truckmayhem/truckmayhem/game/mayhem"
	apphandler "github.com/truckmayhem/truckmayhem/vizserver/handler"
	"github.com/truckmayhem/truckmayhem/vizserver/types"
)

// DefaultPostTimeout bounds how long the simulation waits on a viewer
const DefaultPostTimeout = time.Millisecond

type VizService struct {
	addr        string
	runs        *types.VizRunMap
	health      *healthcheck.HealthCheck
	postTimeout time.Duration
}

func NewVizService(addr string) *VizService {
	return &VizService{
		addr:        addr,
		runs:        types.NewVizRunMap(),
		health:      healthcheck.NewHealthCheck(),
		postTimeout: DefaultPostTimeout,
	}
}

// GetHealthCheck lets the host add its own checks to /health
func (viz *VizService) GetHealthCheck() *healthcheck.HealthCheck {
	return viz.health
}

func (viz *VizService) GetAddr() string {
	return viz.addr
}

// Register makes a live run visible to viewers
func (viz *VizService) Register(game *mayhem.Game, tps int) *types.VizRun {
	level := game.GetLevel()
	return viz.RegisterRun(game.GetID(), level.ID, level.Name, tps)
}

func (viz *VizService) RegisterRun(runID string, levelID int, name string, tps int) *types.VizRun {
	run := types.NewVizRun(runID, levelID, name, tps)
	viz.runs.Set(run.GetId(), run)

	return run
}

func (viz *VizService) Unregister(runID string) {
	viz.runs.Remove(runID)
}

// Publish hands one tick to the viewers of its run; viewers that are not
// keeping up lose the frame
func (viz *VizService) Publish(frame mayhem.Frame, events []mayhem.Event) {
	run := viz.runs.Get(frame.RunID)
	if run == nil {
		return
	}

	run.SetLastFrame(frame)

	if events == nil {
		events = make([]mayhem.Event, 0)
	}

	// no listener is not an error: nobody is watching yet
	notify.PostTimeout(apphandler.FrameEvent, types.VizMessage{
		RunID:  frame.RunID,
		Frame:  frame,
		Events: events,
	}, viz.postTimeout)
}

func (viz *VizService) Handler() http.Handler {
	logger := os.Stdout
	router := mux.NewRouter()

	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(viz.runs)),
	)).Methods("GET")

	router.HandleFunc("/health", viz.health.HttpHandler).Methods("GET")

	router.Handle("/run/{id:[a-zA-Z0-9\\-]+}", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Run(viz.runs)),
	)).Methods("GET")

	router.Handle("/run/{id:[a-zA-Z0-9\\-]+}/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(viz.runs)),
	)).Methods("GET")

	return router
}

func (viz *VizService) ListenAndServe() error {
	log.Println("VIZ Listening on " + viz.addr)

	return http.ListenAndServe(viz.addr, viz.Handler())
}
