package mayhem

import (
	"time"

	"github.com/truckmayhem/truckmayhem/game/challenge"
	"github.com/truckmayhem/truckmayhem/game/score"
)

type Result struct {
	RunID      string                `json:"runId" msgpack:"runId"`
	LevelID    int                   `json:"levelId" msgpack:"levelId"`
	Outcome    Outcome               `json:"outcome" msgpack:"outcome"`
	Stats      score.Stats           `json:"stats" msgpack:"stats"`
	Stars      int                   `json:"stars" msgpack:"stars"`
	Challenges []challenge.Challenge `json:"challenges" msgpack:"challenges"`
	Completed  []challenge.Challenge `json:"completed" msgpack:"completed"`
	Ticks      int                   `json:"ticks" msgpack:"ticks"`
	Duration   time.Duration         `json:"duration" msgpack:"duration"`
}

func (r Result) IsFinished() bool {
	return r.Outcome == OutcomeFinished
}

// Result summarizes the run; stars are only earned by finishing
func (g *Game) Result() Result {
	stats := g.score.Stats()

	stars := 0
	if g.outcome == OutcomeFinished {
		stars = g.level.GetStars(stats.Score)
	}

	return Result{
		RunID:      g.GetID(),
		LevelID:    g.level.ID,
		Outcome:    g.outcome,
		Stats:      stats,
		Stars:      stars,
		Challenges: g.challenges.Challenges(),
		Completed:  g.challenges.CompletedThisRun(),
		Ticks:      g.ticknum,
		Duration:   g.now,
	}
}
