package main

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/GoodBoiDoom/gestures/internal/app"
	"github.com/GoodBoiDoom/gestures/internal/applog"
	"github.com/GoodBoiDoom/gestures/internal/config"
	"github.com/GoodBoiDoom/gestures/internal/errmsg"
	"github.com/GoodBoiDoom/gestures/internal/gesture"
	"github.com/GoodBoiDoom/gestures/internal/icons"
	"github.com/GoodBoiDoom/gestures/internal/keymap"
	"github.com/GoodBoiDoom/gestures/internal/mpris"
	"github.com/GoodBoiDoom/gestures/internal/notify"
	"github.com/GoodBoiDoom/gestures/internal/playback"
	"github.com/GoodBoiDoom/gestures/internal/player"
	"github.com/GoodBoiDoom/gestures/internal/playlist"
	"github.com/GoodBoiDoom/gestures/internal/scene"
	"github.com/GoodBoiDoom/gestures/internal/stderr"
)

// loadConfig reads the configuration named by the --config flag.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, errmsg.Wrap(errmsg.OpConfigLoad, err)
	}
	return cfg, nil
}

// runPlayer starts the terminal UI and its remote inputs.
func runPlayer(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	levelName := cfg.Log.Level
	if cmd.IsSet("log-level") {
		levelName = cmd.String("log-level")
	}
	level, err := applog.ParseLevel(levelName)
	if err != nil {
		return err
	}
	logger, logFile, err := applog.OpenFile(cfg.Log.File, level)
	if err != nil {
		return errmsg.Wrap(errmsg.OpLogOpen, err)
	}
	defer logFile.Close()

	// ALSA writes straight to fd 2; keep it off the screen.
	if capture, err := stderr.Start(logger.With("component", "stderr")); err != nil {
		logger.Warn("stderr capture unavailable", "err", err)
	} else {
		defer capture.Restore()
	}

	icons.Init(cfg.Icons)

	tracks, err := playlist.New(playlist.Resolve(cfg.Playlist())...)
	if err != nil {
		return errmsg.Wrap(errmsg.OpPlaylistBuild, err)
	}

	media := player.New(player.WithPositionInterval(cfg.Player.PositionInterval))
	defer media.Close()

	notices := notify.NewCenter(cfg.Notices.TTL, desktopNotifier(cfg, logger), logger.With("component", "notify"))

	ctrl := playback.New(tracks, media, notices, logger.With("component", "playback"), playback.Options{
		Volume:         cfg.Volume(),
		OptimisticPlay: cfg.OptimisticPlay(),
		StopOnError:    cfg.Player.StopOnError,
	})
	defer ctrl.Close()

	scenes, err := scene.NewSelector(cfg.SceneList(), scene.ID(cfg.Scene), notices)
	if err != nil {
		return errmsg.Wrap(errmsg.OpSceneSetup, err)
	}

	bindings, unknown := cfg.KeyBindings()
	for _, name := range unknown {
		logger.Warn("ignoring key binding for unknown action", "action", name)
	}

	model := app.New(app.Options{
		Controller:     ctrl,
		Scenes:         scenes,
		Notices:        notices,
		Media:          media,
		SwipeThreshold: cfg.Gesture.SwipeThreshold,
		Bindings:       bindings,
		Logger:         logger.With("component", "app"),
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	send := func(action keymap.Action, value float64) {
		p.Send(app.ActionMsg{Action: action, Value: value})
	}

	var wg sync.WaitGroup
	if cfg.HasGestureFeed() {
		wg.Go(func() {
			serveGestures(ctx, cfg, send, logger.With("component", "gesture"))
		})
	}

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(mpris.Options{
			Initial:  ctrl.State(),
			Sub:      ctrl.Subscribe(),
			Clock:    media,
			Dispatch: send,
			Quit:     p.Quit,
			Logger:   logger.With("component", "mpris"),
		})
		if err != nil {
			logger.Warn(errmsg.Format(errmsg.OpMPRISStart, err))
		} else {
			defer adapter.Close()
		}
	}

	logger.Info("starting", "tracks", tracks.Len(), "scene", scenes.ActiveID())
	_, err = p.Run()
	cancel()
	wg.Wait()

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func desktopNotifier(cfg *config.Config, logger *log.Logger) notify.Notifier {
	if !cfg.Notices.Desktop {
		return nil
	}
	n, err := notify.New()
	if err != nil {
		logger.Warn("desktop notifications unavailable", "err", err)
		return nil
	}
	return n
}

// serveGestures runs the gesture feed until ctx is done. A failure to
// listen is logged; the player keeps working without the feed.
func serveGestures(ctx context.Context, cfg *config.Config, send func(keymap.Action, float64), logger *log.Logger) {
	mapping, invalid := cfg.GestureMapping()
	for _, name := range invalid {
		logger.Warn("ignoring gesture mapping with unknown action", "gesture", name)
	}

	recv := gesture.NewReceiver(mapping, cfg.Gesture.MinInterval, func(a keymap.Action) {
		send(a, 0)
	}, logger)
	if err := recv.Listen(ctx, cfg.Gesture.Listen); err != nil {
		logger.Error(errmsg.Format(errmsg.OpGestureListen, err))
	}
}
