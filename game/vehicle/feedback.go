package vehicle

import (
	"time"

	"github.com/truckmayhem/truckmayhem/common/utils/vector"
)

type FeedbackKind string

const (
	FeedbackShake   FeedbackKind = "shake"
	FeedbackExhaust FeedbackKind = "exhaust"
	FeedbackDust    FeedbackKind = "dust"
	FeedbackFlash   FeedbackKind = "flash"
)

// Feedback is a presentation request; the simulation never waits on it
type Feedback struct {
	Kind      FeedbackKind   `json:"kind" msgpack:"kind"`
	Position  vector.Vector2 `json:"position" msgpack:"position"`
	Intensity float64        `json:"intensity,omitempty" msgpack:"intensity"`
	Duration  time.Duration  `json:"duration,omitempty" msgpack:"duration"`
	Count     int            `json:"count,omitempty" msgpack:"count"`
}

const (
	shakeDuration = 80 * time.Millisecond
	flashDuration = 150 * time.Millisecond
	shakeScale    = 0.004
)

func (t *Truck) emit(feedback Feedback) {
	t.feedback = append(t.feedback, feedback)
}

// PopFeedback returns the pending presentation requests and clears them
func (t *Truck) PopFeedback() []Feedback {
	defer func() { t.feedback = make([]Feedback, 0) }()
	return t.feedback
}
