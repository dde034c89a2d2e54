package grid

import (
	"fmt"
	"strings"
)

// Layer says which field of a Cell a Paint writes.
type Layer uint8

const (
	LayerNone   Layer = iota // zero Paint; never valid
	LayerGround              // writes Cell.Ground
	LayerEntity              // writes Cell.Entity
)

// Paint is either a ground kind or an entity kind. Build it with
// GroundPaint or EntityPaint; the zero value is invalid.
type Paint struct {
	layer  Layer
	ground GroundKind
	entity EntityKind
}

// GroundPaint returns a Paint that sets a cell's ground.
func GroundPaint(g GroundKind) Paint {
	return Paint{layer: LayerGround, ground: g}
}

// EntityPaint returns a Paint that sets a cell's entity. EntityPaint(EntityEmpty)
// erases entities.
func EntityPaint(e EntityKind) Paint {
	return Paint{layer: LayerEntity, entity: e}
}

// Layer returns which cell field the paint targets.
func (p Paint) Layer() Layer { return p.layer }

// Ground returns the ground kind; ok is false for non-ground paints.
func (p Paint) Ground() (GroundKind, bool) {
	return p.ground, p.layer == LayerGround
}

// Entity returns the entity kind; ok is false for non-entity paints.
func (p Paint) Entity() (EntityKind, bool) {
	return p.entity, p.layer == LayerEntity
}

// Validate returns ErrInvalidPaintValue unless p is a ground or entity
// paint carrying a defined kind.
func (p Paint) Validate() error {
	switch p.layer {
	case LayerGround:
		if !p.ground.Valid() {
			return fmt.Errorf("%w: ground kind %d", ErrInvalidPaintValue, p.ground)
		}
	case LayerEntity:
		if !p.entity.Valid() {
			return fmt.Errorf("%w: entity kind %d", ErrInvalidPaintValue, p.entity)
		}
	default:
		return fmt.Errorf("%w: layer %d", ErrInvalidPaintValue, p.layer)
	}
	return nil
}

// paint writes p into c and reports whether the cell changed.
// p must already be validated.
func (p Paint) paint(c *Cell) bool {
	switch p.layer {
	case LayerGround:
		if c.Ground == p.ground {
			return false
		}
		c.Ground = p.ground
	case LayerEntity:
		if c.Entity == p.entity {
			return false
		}
		c.Entity = p.entity
	default:
		panic(fmt.Sprintf("grid: paint with layer %d", p.layer))
	}
	return true
}

func (p Paint) String() string {
	switch p.layer {
	case LayerGround:
		return "ground:" + p.ground.Name()
	case LayerEntity:
		return "entity:" + p.entity.Name()
	default:
		return "paint:none"
	}
}

// ParsePaint accepts "GRASS", "ground:GRASS", "TREE" or "entity:TREE".
// Unprefixed names are matched against ground kinds first.
func ParsePaint(s string) (Paint, error) {
	layer, name, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		name, layer = layer, ""
	}
	switch strings.ToLower(layer) {
	case "", "ground":
		if g, ok := ParseGroundKind(name); ok {
			return GroundPaint(g), nil
		}
		if layer != "" {
			break
		}
		fallthrough
	case "entity":
		if e, ok := ParseEntityKind(name); ok {
			return EntityPaint(e), nil
		}
	}
	return Paint{}, fmt.Errorf("%w: %q", ErrInvalidPaintValue, s)
}
