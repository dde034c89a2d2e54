package grid

import (
	"fmt"
	"strings"
)

// Counts tallies ground and entity kinds across the board. EntityEmpty is
// included in the entity counts.
func (b *Board) Counts() (grounds map[GroundKind]int, entities map[EntityKind]int) {
	grounds = make(map[GroundKind]int, groundKindCount)
	entities = make(map[EntityKind]int, entityKindCount)
	for c := range b.All() {
		grounds[c.Ground]++
		entities[c.Entity]++
	}
	return grounds, entities
}

// Report renders a plain-text summary of the board: dimensions, per-kind
// counts and an ASCII map. Entity glyphs take precedence over ground glyphs.
//
//	--- grid report ---
//	size=3x2 cells=6
//	ground: DIRT=5 GRASS=1
//	entity: TREE=1
//	..,
//	T..
func (b *Board) Report() string {
	grounds, entities := b.Counts()

	var sb strings.Builder
	sb.WriteString("--- grid report ---\n")
	fmt.Fprintf(&sb, "size=%dx%d cells=%d\n", b.width, b.height, len(b.cells))

	sb.WriteString("ground:")
	for _, g := range GroundKinds() {
		if n := grounds[g]; n > 0 {
			fmt.Fprintf(&sb, " %s=%d", g.Name(), n)
		}
	}
	sb.WriteByte('\n')

	sb.WriteString("entity:")
	placed := 0
	for _, e := range EntityKinds() {
		if e == EntityEmpty {
			continue
		}
		if n := entities[e]; n > 0 {
			fmt.Fprintf(&sb, " %s=%d", e.Name(), n)
			placed += n
		}
	}
	if placed == 0 {
		sb.WriteString(" none")
	}
	sb.WriteByte('\n')

	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for i := range row {
			if row[i].HasEntity() {
				sb.WriteByte(row[i].Entity.Glyph())
			} else {
				sb.WriteByte(row[i].Ground.Glyph())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
