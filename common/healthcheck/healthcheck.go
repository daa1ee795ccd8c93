package healthcheck

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/truckmayhem/truckmayhem/common/utils"
)

type HealthChecks struct {
	Name   string `json:"name"`
	Status bool   `json:"status"`
	Error  string `json:"error,omitempty"`
}

type HealthCheckHttpResponse struct {
	Checks     []HealthChecks `json:"checks"`
	StatusCode int            `json:"statusCode"`
}

type HealthCheckHandler func() error

type namedChecker struct {
	name    string
	handler HealthCheckHandler
}

// HealthCheck answers /health with the state of every registered checker
type HealthCheck struct {
	lock     *sync.Mutex
	checkers []namedChecker
}

func NewHealthCheck() *HealthCheck {
	return &HealthCheck{
		lock:     &sync.Mutex{},
		checkers: make([]namedChecker, 0),
	}
}

func (hc *HealthCheck) Register(name string, handler HealthCheckHandler) {
	hc.lock.Lock()
	hc.checkers = append(hc.checkers, namedChecker{name, handler})
	hc.lock.Unlock()
}

func (hc *HealthCheck) Run() HealthCheckHttpResponse {
	hc.lock.Lock()
	checkers := append([]namedChecker{}, hc.checkers...)
	hc.lock.Unlock()

	res := HealthCheckHttpResponse{
		Checks:     make([]HealthChecks, 0, len(checkers)),
		StatusCode: http.StatusOK,
	}

	for _, checker := range checkers {
		check := HealthChecks{Name: checker.name, Status: true}

		if err := checker.handler(); err != nil {
			check.Status = false
			check.Error = err.Error()
			res.StatusCode = http.StatusInternalServerError
		}

		res.Checks = append(res.Checks, check)
	}

	return res
}

func (hc *HealthCheck) HttpHandler(w http.ResponseWriter, r *http.Request) {
	res := hc.Run()

	data, err := json.Marshal(res)
	utils.Check(err, "Failed to marshal response")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	w.Write(data)
}
