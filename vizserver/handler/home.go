package handler

import (
	"html"
	"net/http"
	"strconv"

	"github.com/truckmayhem/truckmayhem/vizserver/types"
)

func Home(runs *types.VizRunMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<h2>Truck sim viz server</h2>"))

		for _, run := range runs.ToArray() {
			w.Write([]byte("<a href='/run/" + run.GetId() + "'>" + html.EscapeString(run.GetName()) + " (" + strconv.Itoa(run.GetNumberWatchers()) + " watchers right now)</a><br />"))
		}
	}
}
