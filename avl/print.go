package avl

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Palette maps balance factors -1, 0 and +1 to console colors. Any other
// balance factor indicates a broken tree and is printed with Broken.
type Palette struct {
	LeftHeavy  *color.Color
	Balanced   *color.Color
	RightHeavy *color.Color
	Broken     *color.Color
}

// DefaultPalette is used by Print and Fprint for terminal output.
var DefaultPalette = Palette{
	LeftHeavy:  color.New(color.FgBlue),
	Balanced:   color.New(color.FgGreen),
	RightHeavy: color.New(color.FgYellow),
	Broken:     color.New(color.FgRed, color.Bold),
}

func (p Palette) colorFor(bf int) *color.Color {
	switch bf {
	case -1:
		return p.LeftHeavy
	case 0:
		return p.Balanced
	case 1:
		return p.RightHeavy
	}
	return p.Broken
}

// Print displays a graphic representation of the tree on stdout, rotated by
// 90 degrees with the root to the left. It returns the number of levels.
func (t *Tree[K, V]) Print() int {
	return t.Fprint(os.Stdout)
}

// Fprint displays a graphic representation of the tree on w. If w is a
// terminal, nodes are colored by their balance factor.
func (t *Tree[K, V]) Fprint(w io.Writer) int {
	var palette *Palette
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		palette = &DefaultPalette
	}
	return t.FprintColored(w, palette)
}

// FprintColored displays a graphic representation of the tree on w, using
// palette for coloring nodes. A nil palette produces plain text.
func (t *Tree[K, V]) FprintColored(w io.Writer, palette *Palette) int {
	if t == nil {
		return 0
	}
	return printTree(w, t.root, "", rootBranch, palette)
}

// internal print - returns the maximum depth of the tree
func printTree[K, V any](w io.Writer, n *node[K, V], prefix string, br branch, palette *Palette) int {
	if n == nil {
		return 0
	}
	rd, ld := 0, 0
	if n.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = printTree(w, n.right, prefix+t, rightBranch, palette)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	bf := balanceFactor(n)
	if palette != nil {
		c := *palette.colorFor(bf) // copy, the palette stays untouched
		c.EnableColor()
		c.Fprintf(w, "%v", n.key)
		fmt.Fprintf(w, " %+d\n", bf)
	} else {
		fmt.Fprintf(w, "%v %+d\n", n.key, bf)
	}
	if n.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = printTree(w, n.left, prefix+t, leftBranch, palette)
	}
	return 1 + max(rd, ld)
}
