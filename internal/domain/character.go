package domain

// ─── Companion Character ────────────────────────────────────────────────────

// MaxLevel is the character level cap.
const MaxLevel = 30

// CharacterData is the companion character's progression state.
// Invariant: Exp < required exp for the current level, except at MaxLevel
// where Exp is capped at that level's requirement. Mutated only by the
// progression engine's AddExp.
type CharacterData struct {
	Level              int      `json:"level"`
	Exp                int      `json:"exp"`
	EquippedCostumeID  string   `json:"equipped_costume_id"`
	UnlockedCostumeIDs []string `json:"unlocked_costume_ids"`
}

// NewCharacter returns a fresh level-1 character with the default costume.
func NewCharacter() CharacterData {
	return CharacterData{
		Level:              1,
		Exp:                0,
		EquippedCostumeID:  "default",
		UnlockedCostumeIDs: []string{"default"},
	}
}

// HasCostume reports whether the costume is already unlocked.
func (c CharacterData) HasCostume(id string) bool {
	for _, u := range c.UnlockedCostumeIDs {
		if u == id {
			return true
		}
	}
	return false
}

// Costume is a cosmetic unlock tied to a character level.
type Costume struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	UnlockLevel int    `json:"unlock_level"`
}

// costumeCatalog is the static costume table, ordered by unlock level.
var costumeCatalog = []Costume{
	{ID: "default", Name: "Ppoom", UnlockLevel: 1},
	{ID: "sprout", Name: "Sprout Hat", UnlockLevel: 3},
	{ID: "scarf", Name: "Cozy Scarf", UnlockLevel: 5},
	{ID: "beanie", Name: "Night Beanie", UnlockLevel: 8},
	{ID: "raincoat", Name: "Yellow Raincoat", UnlockLevel: 12},
	{ID: "wizard", Name: "Wizard Robe", UnlockLevel: 16},
	{ID: "astronaut", Name: "Astronaut Suit", UnlockLevel: 20},
	{ID: "king", Name: "Tiny Crown", UnlockLevel: 25},
	{ID: "golden", Name: "Golden Ppoom", UnlockLevel: 30},
}

// CostumeCatalog returns the full costume table.
func CostumeCatalog() []Costume {
	out := make([]Costume, len(costumeCatalog))
	copy(out, costumeCatalog)
	return out
}

// CostumesForLevel returns all costumes unlockable at or below the level.
func CostumesForLevel(level int) []Costume {
	var out []Costume
	for _, c := range costumeCatalog {
		if c.UnlockLevel <= level {
			out = append(out, c)
		}
	}
	return out
}
