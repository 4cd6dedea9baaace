package sand

import (
	"fmt"
	"strconv"
	"strings"
)

// Species identifies the material occupying a cell.
type Species uint8

const (
	Empty Species = iota
	Sand
	Water
	Oil
	Wall
	Fire
	Plant
	Steam
	Lava
	Stone
	Ice
	Smoke
	Acid
	Wood
)

// SpeciesCount is the number of defined species.
const SpeciesCount = int(Wood) + 1

var speciesNames = [SpeciesCount]string{
	Empty: "empty",
	Sand:  "sand",
	Water: "water",
	Oil:   "oil",
	Wall:  "wall",
	Fire:  "fire",
	Plant: "plant",
	Steam: "steam",
	Lava:  "lava",
	Stone: "stone",
	Ice:   "ice",
	Smoke: "smoke",
	Acid:  "acid",
	Wood:  "wood",
}

// Valid reports whether s is a defined species.
func (s Species) Valid() bool { return s <= Wood }

func (s Species) String() string {
	if s.Valid() {
		return speciesNames[s]
	}
	return fmt.Sprintf("species(%d)", uint8(s))
}

// ParseSpecies accepts a species name (case-insensitive) or its numeric id.
func ParseSpecies(name string) (Species, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range speciesNames {
		if n == name {
			return Species(i), true
		}
	}
	if id, err := strconv.ParseUint(name, 10, 8); err == nil && Species(id).Valid() {
		return Species(id), true
	}
	return Empty, false
}

// AllSpecies lists every defined species in id order.
func AllSpecies() []Species {
	out := make([]Species, SpeciesCount)
	for i := range out {
		out[i] = Species(i)
	}
	return out
}

// SpeciesSet is a bitmask of species. Movement primitives take one to
// describe which materials a mover may enter or displace.
type SpeciesSet uint16

func setOf(species ...Species) SpeciesSet {
	var s SpeciesSet
	for _, sp := range species {
		s |= SpeciesSet(1) << sp
	}
	return s
}

// Has reports whether sp is a member of the set.
func (s SpeciesSet) Has(sp Species) bool {
	return sp.Valid() && s&(SpeciesSet(1)<<sp) != 0
}
