// Package valueobject contains domain value objects for the reporting system.
package valueobject

// DefaultChartColors is the colour cycle used for chart series.
var DefaultChartColors = []string{
	"#6366F1",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#8B5CF6",
	"#06B6D4",
	"#EC4899",
	"#84CC16",
	"#F97316",
	"#14B8A6",
}

// Palette hands out colours in a fixed cycle. Each report owns its own
// palette so concurrent renders never share a cursor.
type Palette struct {
	colors []string
	next   int
}

// NewPalette creates a palette cycling through colors, or DefaultChartColors when none are given.
func NewPalette(colors ...string) *Palette {
	if len(colors) == 0 {
		colors = DefaultChartColors
	}
	cp := make([]string, len(colors))
	copy(cp, colors)
	return &Palette{colors: cp}
}

// Next returns the next colour, wrapping around at the end of the cycle.
func (p *Palette) Next() string {
	color := p.colors[p.next]
	p.next = (p.next + 1) % len(p.colors)
	return color
}

// Reset rewinds the cursor to the first colour.
func (p *Palette) Reset() {
	p.next = 0
}
