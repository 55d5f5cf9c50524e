// Package grid streams randomly filled character grids.
package grid

// Tile represents a single grid cell.
type Tile rune

const (
	// TileWall represents an impassable wall cell.
	TileWall Tile = '#'
	// TileFloor represents an open, traversable cell.
	TileFloor Tile = '.'
)

// wallResidue is the draw residue (mod 4) that produces a wall.
const wallResidue = 1

// TileFor maps a single random draw to a tile. Roughly one draw in four
// lands on a wall.
func TileFor(draw int) Tile {
	if draw%4 == wallResidue {
		return TileWall
	}
	return TileFloor
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
