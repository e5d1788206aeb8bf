// Package scenebar renders the scene banner and the scene tabs.
package scenebar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/GoodBoiDoom/gestures/internal/icons"
	"github.com/GoodBoiDoom/gestures/internal/scene"
	"github.com/GoodBoiDoom/gestures/internal/ui/render"
	"github.com/GoodBoiDoom/gestures/internal/ui/styles"
)

// ZoneScene is the click zone id of a scene tab; the zone index is the
// scene's position.
const ZoneScene = "scene"

// Render draws the active scene's gradient banner on the first row and the
// tabs on the second.
func Render(scenes []scene.Scene, active scene.ID, width int) render.Block {
	st := styles.T().S()

	var cur scene.Scene
	for _, s := range scenes {
		if s.ID == active {
			cur = s
		}
	}
	title := "lofi · " + cur.Name
	banner := render.Center(styles.Gradient("░▒▓ "+title+" ▓▒░", cur.From, cur.To), width)

	var b render.Builder
	var zones render.Zones
	for i, s := range scenes {
		if i > 0 {
			b.Space(1)
		}
		label := " " + icons.FormatScene(s.Name) + " "
		style := st.Tab
		if s.ID == active {
			style = st.ActiveTab
		}
		span := b.Add(style.Render(label), lipgloss.Width(label))
		zones = append(zones, render.Zone{ID: ZoneScene, Index: i, Row: 1, Span: span})
	}

	return render.Block{
		Lines: []string{banner, b.String()},
		Zones: zones,
	}
}
