package render

// Span is a half-open column range [Start, End).
type Span struct {
	Start, End int
}

// Width returns the number of columns in the span.
func (s Span) Width() int { return s.End - s.Start }

// Contains reports whether column x falls inside the span.
func (s Span) Contains(x int) bool { return x >= s.Start && x < s.End }

// Fraction returns where x falls across the span, from 0 at Start to 1 at
// the last column.
func (s Span) Fraction(x int) float64 {
	w := s.Width()
	if w <= 1 {
		return 0
	}
	return max(0, min(1, float64(x-s.Start)/float64(w-1)))
}

// Zone is a clickable region on one rendered row.
type Zone struct {
	ID    string
	Index int // item index for list zones
	Row   int
	Span  Span
}

// Zones is the click map of a rendered view.
type Zones []Zone

// At returns the zone under (x, y). Later zones win where they overlap.
func (z Zones) At(x, y int) (Zone, bool) {
	for i := len(z) - 1; i >= 0; i-- {
		if z[i].Row == y && z[i].Span.Contains(x) {
			return z[i], true
		}
	}
	return Zone{}, false
}

// Offset returns a copy of the zones shifted down by rows.
func (z Zones) Offset(rows int) Zones {
	out := make(Zones, len(z))
	for i, zone := range z {
		zone.Row += rows
		out[i] = zone
	}
	return out
}

// Builder lays out a row from segments and records the columns each
// segment occupies.
type Builder struct {
	text  []byte
	width int
}

// Add appends rendered text of the given visible width and returns the
// span it covers. Callers pass the width of the unstyled text.
func (b *Builder) Add(rendered string, width int) Span {
	s := Span{Start: b.width, End: b.width + width}
	b.text = append(b.text, rendered...)
	b.width += width
	return s
}

// Space appends n blank columns.
func (b *Builder) Space(n int) {
	for range max(n, 0) {
		b.text = append(b.text, ' ')
	}
	b.width += max(n, 0)
}

// Width returns the columns used so far.
func (b *Builder) Width() int { return b.width }

func (b *Builder) String() string { return string(b.text) }

// Block is a rendered component: its lines and the click zones on them.
type Block struct {
	Lines []string
	Zones Zones
}

// Height returns the number of lines.
func (b Block) Height() int { return len(b.Lines) }

// Stack places blocks top to bottom, shifting each block's zones below the
// lines before it.
func Stack(blocks ...Block) Block {
	var out Block
	for _, b := range blocks {
		out.Zones = append(out.Zones, b.Zones.Offset(len(out.Lines))...)
		out.Lines = append(out.Lines, b.Lines...)
	}
	return out
}

// Tail keeps the last n lines, the way a terminal shows a view taller than
// its screen. Zones on dropped lines are removed and the rest move up.
func (b Block) Tail(n int) Block {
	drop := len(b.Lines) - max(n, 0)
	if drop <= 0 {
		return b
	}
	out := Block{Lines: b.Lines[drop:]}
	for _, z := range b.Zones {
		if z.Row >= drop {
			z.Row -= drop
			out.Zones = append(out.Zones, z)
		}
	}
	return out
}
