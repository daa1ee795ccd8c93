package mayhem

import (
	"github.com/truckmayhem/truckmayhem/common/utils/vector"
	"github.com/truckmayhem/truckmayhem/game/challenge"
	"github.com/truckmayhem/truckmayhem/game/entities"
	"github.com/truckmayhem/truckmayhem/game/vehicle"
)

type EventKind string

const (
	EventDestructibleDestroyed EventKind = "destructible-destroyed"
	EventHazardTriggered       EventKind = "hazard-triggered"
	EventCollectibleCollected  EventKind = "collectible-collected"
	EventLanded                EventKind = "landed"
	EventChallengeCompleted    EventKind = "challenge-completed"
	EventRunEnded              EventKind = "run-ended"
	EventShake                 EventKind = "shake"
	EventExhaust               EventKind = "exhaust"
	EventDust                  EventKind = "dust"
	EventFlash                 EventKind = "flash"
)

// Event is a notification for the presentation layer; only the fields
// relevant to Kind are set
type Event struct {
	Kind     EventKind      `json:"kind" msgpack:"kind"`
	Tick     int            `json:"tick" msgpack:"tick"`
	Position vector.Vector2 `json:"position" msgpack:"position"`

	Points          int                  `json:"points,omitempty" msgpack:"points,omitempty"`
	ComboMultiplier int                  `json:"comboMultiplier,omitempty" msgpack:"comboMultiplier,omitempty"`
	Damage          float64              `json:"damage,omitempty" msgpack:"damage,omitempty"`
	Type            string               `json:"type,omitempty" msgpack:"type,omitempty"`
	Label           string               `json:"label,omitempty" msgpack:"label,omitempty"`
	Explosion       entities.Explosion   `json:"explosion,omitempty" msgpack:"explosion,omitempty"`
	Landing         *vehicle.Landing     `json:"landing,omitempty" msgpack:"landing,omitempty"`
	Challenge       *challenge.Challenge `json:"challenge,omitempty" msgpack:"challenge,omitempty"`
	Outcome         Outcome              `json:"outcome,omitempty" msgpack:"outcome,omitempty"`
	Feedback        *vehicle.Feedback    `json:"feedback,omitempty" msgpack:"feedback,omitempty"`
}

var feedbackEvents = map[vehicle.FeedbackKind]EventKind{
	vehicle.FeedbackShake:   EventShake,
	vehicle.FeedbackExhaust: EventExhaust,
	vehicle.FeedbackDust:    EventDust,
	vehicle.FeedbackFlash:   EventFlash,
}

func (g *Game) emit(event Event) {
	event.Tick = g.ticknum
	g.events = append(g.events, event)
}

// PopEvents returns the events raised since the last call, in order
func (g *Game) PopEvents() []Event {
	defer func() { g.events = make([]Event, 0) }()
	return g.events
}

func (g *Game) forwardTruckFeedback() {
	for _, feedback := range g.truck.PopFeedback() {
		f := feedback
		g.emit(Event{
			Kind:     feedbackEvents[f.Kind],
			Position: f.Position,
			Feedback: &f,
		})
	}
}

// explosionShake mirrors the camera response to explosions
func (g *Game) explosionShake(position vector.Vector2, explosion entities.Explosion) {
	var feedback vehicle.Feedback

	switch explosion {
	case entities.ExplosionLarge:
		feedback = vehicle.Feedback{Kind: vehicle.FeedbackShake, Intensity: 0.008, Duration: largeShakeDuration}
	case entities.ExplosionMedium:
		feedback = vehicle.Feedback{Kind: vehicle.FeedbackShake, Intensity: 0.005, Duration: mediumShakeDuration}
	default:
		feedback = vehicle.Feedback{Kind: vehicle.FeedbackShake, Intensity: 0.002, Duration: smallShakeDuration}
	}

	feedback.Position = position
	g.emit(Event{
		Kind:     EventShake,
		Position: position,
		Feedback: &feedback,
	})
}
