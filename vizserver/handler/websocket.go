package handler

import (
	"log"
	"net/http"

	notify "github.com/bitly/go-notify"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/truckmayhem/truckmayhem/common/utils"
	"github.com/truckmayhem/truckmayhem/vizserver/types"
)

// FrameEvent is the notify channel the simulation posts frames to
const FrameEvent = "viz:frame"

// frames queued per watcher before the publisher starts dropping
const watcherBacklog = 16

type wsincomingmessage struct {
	messageType int
	p           []byte
	err         error
}

type messageReader interface {
	ReadMessage() (messageType int, p []byte, err error)
}

// readIncoming forwards the viewer messages to ch until the connection
// fails or done is closed
func readIncoming(client messageReader, ch chan<- wsincomingmessage, done <-chan struct{}) {
	for {
		messageType, p, err := client.ReadMessage()

		select {
		case ch <- wsincomingmessage{messageType, p, err}:
		case <-done:
			return
		}

		if err != nil {
			return
		}
	}
}

func Websocket(runs *types.VizRunMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		run := runs.Get(vars["id"])

		if run == nil {
			http.Error(w, "RUN NOT FOUND !", http.StatusNotFound)
			return
		}

		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("upgrade:", err)
			return
		}

		// Subscribed before the init message so that no frame posted after
		// it is missed
		vizmsgchan := make(chan interface{}, watcherBacklog)
		notify.Start(FrameEvent, vizmsgchan)

		watcher := types.NewWatcher(c)
		run.SetWatcher(watcher)

		defer func(c *websocket.Conn) {
			notify.Stop(FrameEvent, vizmsgchan)
			run.RemoveWatcher(watcher.GetId())
			c.Close()
			utils.Debug("viz-server", "watcher "+watcher.GetId()+" left run "+run.GetId())
		}(c)

		// Listen to messages incoming from the viewer; mandatory to notice
		// when the websocket is closed client side
		incomingmsg := make(chan wsincomingmessage)
		done := make(chan struct{})
		defer close(done)

		go readIncoming(c, incomingmsg, done)

		for {
			select {
			case msg := <-incomingmsg:
				if msg.err != nil {
					return
				}

			case vizmsg := <-vizmsgchan:
				message, ok := vizmsg.(types.VizMessage)
				if !ok {
					utils.Debug("viz-server", "dropped a message that is not a VizMessage")
					continue
				}

				if message.RunID != run.GetId() {
					continue
				}

				err := watcher.WriteJSON(types.VizFrameMessage{
					Type: "frame",
					Data: message,
				})

				if err != nil {
					return
				}
			}
		}
	}
}
