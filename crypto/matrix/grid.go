// Package matrix implements the keyed-square ciphers Playfair and ADFGVX.
//
// Both build a Grid from a keyword: key symbols first, in order of first
// appearance, then the rest of the alphabet in its canonical order. The grid
// is a bijection between the alphabet and its (row, col) cells.
package matrix

import (
	"fmt"

	"cipher-backend/crypto"
)

type Coord struct {
	Row int
	Col int
}

type Grid struct {
	width  int
	height int
	cells  []rune
	pos    map[rune]Coord
}

// orderedUnique returns key's alphabet symbols deduplicated with the first
// occurrence kept, followed by every unused alphabet symbol.
func orderedUnique(key []rune, alphabet *crypto.Alphabet) []rune {
	seen := make(map[rune]bool, alphabet.Len())
	out := make([]rune, 0, alphabet.Len())

	add := func(r rune) {
		if seen[r] || !alphabet.Contains(r) {
			return
		}
		seen[r] = true
		out = append(out, r)
	}

	for _, r := range key {
		add(r)
	}
	for _, r := range alphabet.Symbols() {
		add(r)
	}
	return out
}

// NewGrid lays out the keyed alphabet row by row. width*height must equal
// the alphabet size.
func NewGrid(key []rune, alphabet *crypto.Alphabet, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 || width*height != alphabet.Len() {
		return nil, fmt.Errorf("grid %dx%d cannot hold an alphabet of %d symbols", width, height, alphabet.Len())
	}

	cells := orderedUnique(key, alphabet)
	g := &Grid{
		width:  width,
		height: height,
		cells:  cells,
		pos:    make(map[rune]Coord, len(cells)),
	}
	for i, r := range cells {
		g.pos[r] = Coord{Row: i / width, Col: i % width}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// At returns the symbol at (row, col), wrapping both coordinates.
func (g *Grid) At(row, col int) rune {
	r := crypto.Mod(row, g.height)
	c := crypto.Mod(col, g.width)
	return g.cells[r*g.width+c]
}

func (g *Grid) Locate(r rune) (Coord, bool) {
	c, ok := g.pos[r]
	return c, ok
}

// Rows returns the grid contents, one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, 0, g.height)
	for r := 0; r < g.height; r++ {
		rows = append(rows, string(g.cells[r*g.width:(r+1)*g.width]))
	}
	return rows
}
