package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrRaggedRow is returned when a row's width differs from the first row.
	ErrRaggedRow = errors.New("ragged row")
	// ErrUnknownTile is returned for any character other than a wall or floor.
	ErrUnknownTile = errors.New("unknown tile")
)

// Maze is a grid read back from text. Coordinates put (0, 0) at the
// bottom-left, so the last line of the file is y == 0.
type Maze struct {
	Width  int
	Height int
	Tiles  [][]Tile // indexed [y][x]
}

// Load reads a maze from the file at path.
func Load(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read maze %s: %w", path, err)
	}
	return m, nil
}

// Read parses newline-delimited rows of tiles. Every row must have the
// width of the first. Empty input yields an empty maze.
func Read(r io.Reader) (*Maze, error) {
	var rows [][]Tile
	width := -1

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<30)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if width == -1 {
			width = len(text)
		} else if len(text) != width {
			return nil, fmt.Errorf("line %d: %w: width %d, want %d", line, ErrRaggedRow, len(text), width)
		}

		row := make([]Tile, len(text))
		for x, ch := range []byte(text) {
			tile := Tile(ch)
			if tile != TileWall && tile != TileFloor {
				return nil, fmt.Errorf("line %d column %d: %w %q", line, x+1, ErrUnknownTile, ch)
			}
			row[x] = tile
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Flip so the first line read becomes the top row.
	height := len(rows)
	tiles := make([][]Tile, height)
	for i, row := range rows {
		tiles[height-1-i] = row
	}

	if width < 0 {
		width = 0
	}
	return &Maze{Width: width, Height: height, Tiles: tiles}, nil
}

// InBounds returns true if (x, y) lies on the maze.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// GetTile returns the tile at the given position. Positions off the maze
// read as walls.
func (m *Maze) GetTile(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[y][x]
}

// IsLegal returns true if (x, y) is on the maze and can be walked on.
func (m *Maze) IsLegal(x, y int) bool {
	return m.GetTile(x, y).IsPassable()
}

// Walls counts the wall tiles.
func (m *Maze) Walls() int {
	walls := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.IsLegal(x, y) {
				walls++
			}
		}
	}
	return walls
}

// String renders the maze in file order, top row first.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow(m.Height * (m.Width + 1))
	for y := m.Height - 1; y >= 0; y-- {
		for x := 0; x < m.Width; x++ {
			b.WriteRune(m.Tiles[y][x].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
