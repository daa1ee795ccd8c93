package utils

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/truckmayhem/truckmayhem/common/utils/number"
)

type Stopwatch struct {
	name    string
	started map[string]time.Time
	elapsed map[string]time.Duration
	order   []string
}

func MakeStopwatch(name string) *Stopwatch {
	return &Stopwatch{
		name:    name,
		started: make(map[string]time.Time),
		elapsed: make(map[string]time.Duration),
	}
}

func (s *Stopwatch) Start(label string) {
	if _, seen := s.elapsed[label]; !seen {
		s.order = append(s.order, label)
		s.elapsed[label] = 0
	}

	s.started[label] = time.Now()
}

func (s *Stopwatch) Stop(label string) time.Duration {
	start, ok := s.started[label]
	if !ok {
		return 0
	}

	delete(s.started, label)
	d := time.Since(start)
	s.elapsed[label] += d

	return d
}

func (s *Stopwatch) Elapsed(label string) time.Duration {
	return s.elapsed[label]
}

// String lists the labels, slowest first
func (s *Stopwatch) String() string {
	labels := make([]string, len(s.order))
	copy(labels, s.order)

	sort.SliceStable(labels, func(i, j int) bool {
		return s.elapsed[labels[i]] > s.elapsed[labels[j]]
	})

	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		parts = append(parts, fmt.Sprintf("%s=%sms", label, number.FloatToStr(number.DurationMs(s.elapsed[label]), 3)))
	}

	return s.name + " " + strings.Join(parts, " ")
}
