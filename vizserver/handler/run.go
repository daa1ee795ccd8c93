package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/truckmayhem/truckmayhem/common/utils"
	"github.com/truckmayhem/truckmayhem/vizserver/types"
)

// Run describes a run and its last published frame
func Run(runs *types.VizRunMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		run := runs.Get(vars["id"])

		if run == nil {
			http.Error(w, "RUN NOT FOUND !", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(types.VizInitMessageData{
			RunID:     run.GetId(),
			LevelID:   run.GetLevelID(),
			LevelName: run.GetName(),
			Tps:       run.GetTps(),
			Frame:     run.GetLastFrame(),
		})

		if err != nil {
			utils.Debug("viz-server", "Could not encode run "+run.GetId()+"; "+err.Error())
		}
	}
}
