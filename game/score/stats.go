package score

type StatKey string

const (
	StatScore             StatKey = "score"
	StatObjectsDestroyed  StatKey = "objectsDestroyed"
	StatVehiclesDestroyed StatKey = "vehiclesDestroyed"
	StatTotalFlips        StatKey = "totalFlips"
	StatTotalAirTime      StatKey = "totalAirTime"
	StatMaxCombo          StatKey = "maxCombo"
	StatGemsCollected     StatKey = "gemsCollected"
	StatHazardsHit        StatKey = "hazardsHit"
	StatFinishHealth      StatKey = "finishHealth"
)

// Stats is a snapshot of the score state
type Stats struct {
	Score             int     `json:"score" msgpack:"score"`
	Combo             int     `json:"combo" msgpack:"combo"`
	ComboMultiplier   int     `json:"comboMultiplier" msgpack:"comboMultiplier"`
	ComboTimerMs      float64 `json:"comboTimerMs" msgpack:"comboTimerMs"`
	ObjectsDestroyed  int     `json:"objectsDestroyed" msgpack:"objectsDestroyed"`
	VehiclesDestroyed int     `json:"vehiclesDestroyed" msgpack:"vehiclesDestroyed"`
	TotalFlips        int     `json:"totalFlips" msgpack:"totalFlips"`
	TotalAirTime      float64 `json:"totalAirTime" msgpack:"totalAirTime"`
	MaxCombo          int     `json:"maxCombo" msgpack:"maxCombo"`
	GemsCollected     int     `json:"gemsCollected" msgpack:"gemsCollected"`
	HazardsHit        int     `json:"hazardsHit" msgpack:"hazardsHit"`
	DestructionPoints int     `json:"destructionPoints" msgpack:"destructionPoints"`
	FlipPoints        int     `json:"flipPoints" msgpack:"flipPoints"`
	AirTimePoints     int     `json:"airTimePoints" msgpack:"airTimePoints"`
	GemPoints         int     `json:"gemPoints" msgpack:"gemPoints"`
	FinishHealth      float64 `json:"finishHealth" msgpack:"finishHealth"`
}

// Value reads a stat by key; unknown keys read as 0
func (s Stats) Value(key StatKey) float64 {
	switch key {
	case StatScore:
		return float64(s.Score)
	case StatObjectsDestroyed:
		return float64(s.ObjectsDestroyed)
	case StatVehiclesDestroyed:
		return float64(s.VehiclesDestroyed)
	case StatTotalFlips:
		return float64(s.TotalFlips)
	case StatTotalAirTime:
		return s.TotalAirTime
	case StatMaxCombo:
		return float64(s.MaxCombo)
	case StatGemsCollected:
		return float64(s.GemsCollected)
	case StatHazardsHit:
		return float64(s.HazardsHit)
	case StatFinishHealth:
		return s.FinishHealth
	}

	return 0
}
