package tilemap

import "fmt"

// Kind is a terrain type. Kinds come in families of VariantsPerFamily visual
// variants that share gameplay properties.
type Kind int

const (
	Grass1 Kind = iota
	Grass2
	Grass3
	Grass4
	Water1
	Water2
	Water3
	Water4
	Mountain1
	Mountain2
	Mountain3
	Mountain4
	Desert1
	Desert2
	Desert3
	Desert4
	Forest1
	Forest2
	Forest3
	Forest4
	Marsh1
	Marsh2
	Marsh3
	Marsh4
	Dirt1
	Dirt2
	Dirt3
	Dirt4
	Hills1
	Hills2
	Hills3
	Hills4

	// KindCount is the number of built-in terrain kinds.
	KindCount = int(Hills4) + 1
)

// VariantsPerFamily is the number of sprite variants per terrain family.
const VariantsPerFamily = 4

// Family groups the variants of one terrain.
type Family int

const (
	FamilyGrass Family = iota
	FamilyWater
	FamilyMountain
	FamilyDesert
	FamilyForest
	FamilyMarsh
	FamilyDirt
	FamilyHills
)

var familyNames = [...]string{
	FamilyGrass:    "grass",
	FamilyWater:    "water",
	FamilyMountain: "mountain",
	FamilyDesert:   "desert",
	FamilyForest:   "forest",
	FamilyMarsh:    "marsh",
	FamilyDirt:     "dirt",
	FamilyHills:    "hills",
}

// Families lists every built-in family.
func Families() []Family {
	out := make([]Family, len(familyNames))
	for i := range familyNames {
		out[i] = Family(i)
	}
	return out
}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("family(%d)", int(f))
	}
	return familyNames[f]
}

// Family returns the terrain family of k.
func (k Kind) Family() Family {
	return Family(int(k) / VariantsPerFamily)
}

// Variant returns the 1-based variant number of k within its family.
func (k Kind) Variant() int {
	return int(k)%VariantsPerFamily + 1
}

// String returns the sprite name of k, e.g. "forest3".
func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return fmt.Sprintf("%s%d", k.Family(), k.Variant())
}

// KindByName resolves a sprite name produced by Kind.String.
func KindByName(name string) (Kind, bool) {
	for k := Kind(0); int(k) < KindCount; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// FamilyByName resolves a family name such as "marsh".
func FamilyByName(name string) (Family, bool) {
	for i, n := range familyNames {
		if n == name {
			return Family(i), true
		}
	}
	return 0, false
}
