package challenge

// Palette is a cosmetic truck tint unlocked by completing challenges
type Palette struct {
	ID        string
	Name      string
	BodyTint  uint32
	WheelTint uint32
	BoostTint uint32
	Locked    bool
}

const DefaultPalette = "DEFAULT"

var Palettes = []Palette{
	{ID: DefaultPalette, Name: "Classic Red", BodyTint: 0xffffff, WheelTint: 0xffffff, BoostTint: 0xff8866},
	{ID: "MIDNIGHT", Name: "Midnight Blue", BodyTint: 0x4466ff, WheelTint: 0x8899cc, BoostTint: 0x44aaff, Locked: true},
	{ID: "TOXIC", Name: "Toxic Green", BodyTint: 0x44ff44, WheelTint: 0x88cc88, BoostTint: 0x88ff44, Locked: true},
	{ID: "GOLDEN", Name: "Gold Rush", BodyTint: 0xffcc00, WheelTint: 0xddaa44, BoostTint: 0xffee66, Locked: true},
	{ID: "NEON_PURPLE", Name: "Neon Purple", BodyTint: 0xcc44ff, WheelTint: 0x9966cc, BoostTint: 0xee66ff, Locked: true},
	{ID: "ICE", Name: "Ice Storm", BodyTint: 0x88eeff, WheelTint: 0xaaddee, BoostTint: 0xccffff, Locked: true},
	{ID: "INFERNO", Name: "Inferno", BodyTint: 0xff6600, WheelTint: 0xcc5500, BoostTint: 0xff2200, Locked: true},
	{ID: "SHADOW", Name: "Shadow", BodyTint: 0x444444, WheelTint: 0x333333, BoostTint: 0x666666, Locked: true},
	{ID: "CANDY", Name: "Candy Pink", BodyTint: 0xff66aa, WheelTint: 0xcc5588, BoostTint: 0xff88cc, Locked: true},
	{ID: "CHROME", Name: "Chrome", BodyTint: 0xcccccc, WheelTint: 0xeeeeee, BoostTint: 0xffffff, Locked: true},
}

func GetPalette(id string) (Palette, bool) {
	for _, p := range Palettes {
		if p.ID == id {
			return p, true
		}
	}

	return Palette{}, false
}

// AllUnlocked is true once every palette of the catalogue is in unlocked
func AllUnlocked(unlocked []string) bool {
	set := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		set[id] = true
	}

	for _, p := range Palettes {
		if !set[p.ID] {
			return false
		}
	}

	return true
}
