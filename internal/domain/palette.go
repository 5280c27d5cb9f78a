package domain

// DefaultPalette is the fixed worker color rotation used by the planning
// grid. Order matters: colors are assigned by worker position, cycling.
var DefaultPalette = []string{
	"#e6694a",
	"#f2a65a",
	"#f2d35a",
	"#8ec07c",
	"#5ab5f2",
	"#7a8ff2",
	"#b57af2",
	"#f27ab5",
	"#72cfbf",
	"#a3b86c",
}

// ColorFor returns the palette color for the given position, cycling with
// modulo. Negative indexes and an empty palette yield "".
func ColorFor(index int, palette []string) string {
	if index < 0 || len(palette) == 0 {
		return ""
	}
	return palette[index%len(palette)]
}
