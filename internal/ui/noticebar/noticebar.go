// Package noticebar renders the transient notices.
package noticebar

import (
	"github.com/GoodBoiDoom/gestures/internal/notify"
	"github.com/GoodBoiDoom/gestures/internal/ui/render"
	"github.com/GoodBoiDoom/gestures/internal/ui/styles"
)

// ZoneNotice is the click zone id of a notice; the index is its position.
const ZoneNotice = "notice"

// Render draws one row per notice, oldest first.
func Render(notices []notify.Notice, width int) render.Block {
	st := styles.T().S()
	var b render.Block
	for i, n := range notices {
		text := render.Truncate("• "+n.Text, width)
		b.Lines = append(b.Lines, st.Notice.Render(text))
		b.Zones = append(b.Zones, render.Zone{
			ID:    ZoneNotice,
			Index: i,
			Row:   i,
			Span:  render.Span{Start: 0, End: width},
		})
	}
	return b
}
