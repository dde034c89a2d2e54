package grid

import (
	"image/color"
	"strings"
)

// GroundKind identifies the terrain painted on a cell's base layer.
type GroundKind uint8

const (
	GroundDirt  GroundKind = iota // Baseline ground for a new board
	GroundGrass                   // Open field
	GroundSand                    // Beach / desert
	GroundWater                   // Lakes and rivers
	GroundStone                   // Rock floor, paved areas
	GroundSnow                    // Cold biome
	groundKindCount               // sentinel
)

// EntityKind identifies an optional object placed on top of the ground.
type EntityKind uint8

const (
	EntityEmpty     EntityKind = iota // No entity present
	EntityTree                        // Single tree
	EntityRock                        // Boulder
	EntityHouse                       // Building
	EntityUnit                        // Player or NPC spawn
	EntityChest                       // Loot container
	entityKindCount                   // sentinel
)

// kindDef is one row of a kind table.
type kindDef struct {
	name  string
	color color.RGBA
	glyph byte // used by Board.Report
}

var groundDefs = [groundKindCount]kindDef{
	GroundDirt:  {name: "DIRT", color: color.RGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff}, glyph: '.'},
	GroundGrass: {name: "GRASS", color: color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}, glyph: ','},
	GroundSand:  {name: "SAND", color: color.RGBA{R: 0xe6, G: 0xd2, B: 0x8c, A: 0xff}, glyph: ':'},
	GroundWater: {name: "WATER", color: color.RGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}, glyph: '~'},
	GroundStone: {name: "STONE", color: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, glyph: '#'},
	GroundSnow:  {name: "SNOW", color: color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}, glyph: '*'},
}

// EntityEmpty has no color; its zero RGBA is never drawn.
var entityDefs = [entityKindCount]kindDef{
	EntityEmpty: {name: "EMPTY", glyph: 0},
	EntityTree:  {name: "TREE", color: color.RGBA{R: 0x1b, G: 0x5e, B: 0x20, A: 0xff}, glyph: 'T'},
	EntityRock:  {name: "ROCK", color: color.RGBA{R: 0x42, G: 0x42, B: 0x42, A: 0xff}, glyph: 'R'},
	EntityHouse: {name: "HOUSE", color: color.RGBA{R: 0xc6, G: 0x28, B: 0x28, A: 0xff}, glyph: 'H'},
	EntityUnit:  {name: "UNIT", color: color.RGBA{R: 0xff, G: 0xeb, B: 0x3b, A: 0xff}, glyph: 'U'},
	EntityChest: {name: "CHEST", color: color.RGBA{R: 0xff, G: 0x8f, B: 0x00, A: 0xff}, glyph: 'C'},
}

// Valid reports whether g is one of the defined ground kinds.
func (g GroundKind) Valid() bool { return g < groundKindCount }

// Name returns the display name, e.g. "GRASS".
func (g GroundKind) Name() string {
	if !g.Valid() {
		return "GROUND?"
	}
	return groundDefs[g].name
}

func (g GroundKind) String() string { return g.Name() }

// Color returns the fill color for the ground kind.
func (g GroundKind) Color() color.RGBA {
	if !g.Valid() {
		return color.RGBA{R: 0xff, B: 0xff, A: 0xff} // magenta: undefined
	}
	return groundDefs[g].color
}

// Glyph returns the single-character symbol used in text reports.
func (g GroundKind) Glyph() byte {
	if !g.Valid() {
		return '?'
	}
	return groundDefs[g].glyph
}

// Valid reports whether e is one of the defined entity kinds.
func (e EntityKind) Valid() bool { return e < entityKindCount }

// Name returns the display name, e.g. "TREE".
func (e EntityKind) Name() string {
	if !e.Valid() {
		return "ENTITY?"
	}
	return entityDefs[e].name
}

func (e EntityKind) String() string { return e.Name() }

// Color returns the disc color for the entity. ok is false for EntityEmpty,
// which is never drawn.
func (e EntityKind) Color() (c color.RGBA, ok bool) {
	if e == EntityEmpty || !e.Valid() {
		return color.RGBA{}, false
	}
	return entityDefs[e].color, true
}

// Glyph returns the report symbol, or 0 for EntityEmpty.
func (e EntityKind) Glyph() byte {
	if !e.Valid() {
		return '?'
	}
	return entityDefs[e].glyph
}

// GroundKinds lists every ground kind in declaration order.
func GroundKinds() []GroundKind {
	out := make([]GroundKind, 0, groundKindCount)
	for g := GroundKind(0); g < groundKindCount; g++ {
		out = append(out, g)
	}
	return out
}

// EntityKinds lists every entity kind in declaration order, EntityEmpty first.
func EntityKinds() []EntityKind {
	out := make([]EntityKind, 0, entityKindCount)
	for e := EntityKind(0); e < entityKindCount; e++ {
		out = append(out, e)
	}
	return out
}

// ParseGroundKind looks up a ground kind by name (case-insensitive).
func ParseGroundKind(name string) (GroundKind, bool) {
	for g := GroundKind(0); g < groundKindCount; g++ {
		if strings.EqualFold(groundDefs[g].name, name) {
			return g, true
		}
	}
	return 0, false
}

// ParseEntityKind looks up an entity kind by name (case-insensitive).
func ParseEntityKind(name string) (EntityKind, bool) {
	for e := EntityKind(0); e < entityKindCount; e++ {
		if strings.EqualFold(entityDefs[e].name, name) {
			return e, true
		}
	}
	return 0, false
}
