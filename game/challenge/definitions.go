package challenge

import "github.com/truckmayhem/truckmayhem/game/score"

type Definition struct {
	ID       string
	Text     string // {n} is replaced by the target
	Stat     score.StatKey
	MinN     float64
	MaxN     float64
	RewardID string
}

var Definitions = []Definition{
	{ID: "destroy_objects", Text: "Destroy {n} objects", Stat: score.StatObjectsDestroyed, MinN: 8, MaxN: 20, RewardID: "MIDNIGHT"},
	{ID: "collect_gems", Text: "Collect {n} gems", Stat: score.StatGemsCollected, MinN: 5, MaxN: 12, RewardID: "TOXIC"},
	{ID: "reach_combo", Text: "Reach x{n} combo", Stat: score.StatMaxCombo, MinN: 3, MaxN: 5, RewardID: "GOLDEN"},
	{ID: "do_flips", Text: "Land {n} flips", Stat: score.StatTotalFlips, MinN: 2, MaxN: 5, RewardID: "NEON_PURPLE"},
	{ID: "air_time", Text: "Get {n}s total air time", Stat: score.StatTotalAirTime, MinN: 5, MaxN: 12, RewardID: "ICE"},
	{ID: "score_points", Text: "Score {n} points", Stat: score.StatScore, MinN: 2000, MaxN: 6000, RewardID: "INFERNO"},
	{ID: "finish_health", Text: "Finish with {n}+ health", Stat: score.StatFinishHealth, MinN: 30, MaxN: 60, RewardID: "SHADOW"},
	{ID: "destroy_vehicles", Text: "Destroy {n} vehicles", Stat: score.StatVehiclesDestroyed, MinN: 3, MaxN: 6, RewardID: "CANDY"},
	{ID: "survive_hazards", Text: "Hit {n} hazards and survive", Stat: score.StatHazardsHit, MinN: 3, MaxN: 6, RewardID: "CHROME"},
}
