package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/GoodBoiDoom/gestures/internal/keymap"
	"github.com/GoodBoiDoom/gestures/internal/playlist"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F2C57C"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75"))
)

func tracksCommand() *cli.Command {
	return &cli.Command{
		Name:   "tracks",
		Usage:  "List the playlist with file sizes",
		Action: listTracks,
	}
}

func keysCommand() *cli.Command {
	return &cli.Command{
		Name:   "keys",
		Usage:  "Print key bindings and the gesture mapping",
		Action: listKeys,
	}
}

func listTracks(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tracks := playlist.Resolve(cfg.Playlist())

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "TITLE", "ARTIST", "LENGTH", "SIZE", "FILE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})

	var total uint64
	for i, tr := range tracks {
		size := missingStyle.Render("missing")
		if fi, err := os.Stat(tr.Src); err == nil {
			size = humanize.Bytes(uint64(fi.Size()))
			total += uint64(fi.Size())
		}
		t.Row(strconv.Itoa(i+1), tr.Title, tr.Artist, tr.Duration, size, tr.Src)
	}

	fmt.Println(t.Render())
	fmt.Printf("%d tracks, %s\n", len(tracks), humanize.Bytes(total))
	return nil
}

func listKeys(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	bindings, unknown := cfg.KeyBindings()
	r := keymap.NewResolver(bindings)
	for _, ctx := range keymap.Contexts {
		fmt.Println(headerStyle.Render(strings.ToUpper(ctx)))
		for _, b := range keymap.ByContext(ctx) {
			keys := r.KeysFor(b.Action)
			if len(keys) == 0 {
				fmt.Printf("  %-12s %s\n", missingStyle.Render("unbound"), b.Description)
				continue
			}
			fmt.Printf("  %-12s %s\n", keymap.DisplayKeys(keys), b.Description)
		}
		fmt.Println()
	}
	for _, name := range unknown {
		fmt.Printf("  %-12s %s\n", name, missingStyle.Render("unknown action"))
	}
	if len(unknown) > 0 {
		fmt.Println()
	}
	mapping, invalid := cfg.GestureMapping()

	fmt.Println(headerStyle.Render("GESTURES"))
	names := make([]string, 0, len(mapping))
	for name := range mapping {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-12s %s\n", name, mapping[name])
	}
	for _, name := range invalid {
		fmt.Printf("  %-12s %s\n", name, missingStyle.Render("unknown action"))
	}
	if cfg.HasGestureFeed() {
		fmt.Printf("\n  feed: %s\n", cfg.Gesture.Listen)
	}
	return nil
}
