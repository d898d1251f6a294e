// Command yakoplay is a small terminal front end for the yako_player
// bindings: it plays the files given on the command line (or the
// configured default folder) with seek, volume and MPRIS control.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	yako "github.com/llehouerou/go-yako"
	"github.com/llehouerou/go-yako/internal/config"
	"github.com/llehouerou/go-yako/internal/errmsg"
	"github.com/llehouerou/go-yako/internal/icons"
	"github.com/llehouerou/go-yako/internal/mpris"
	"github.com/llehouerou/go-yako/internal/notify"
	"github.com/llehouerou/go-yako/internal/playback"
	"github.com/llehouerou/go-yako/internal/session"
	"github.com/llehouerou/go-yako/internal/stderr"
	"github.com/llehouerou/go-yako/internal/ui/playerbar"
	"github.com/llehouerou/go-yako/internal/ui/styles"
)

type tickMsg time.Time

type finishedMsg struct{ path string }

type trackChangedMsg struct{ path string }

type playbackErrMsg struct{ text string }

type nativeLogMsg string

type model struct {
	svc      playback.Service
	sess     *session.Manager
	cfg      *config.Config
	sub      *playback.Subscription
	notifier notify.Notifier

	files []string
	idx   int

	width  int
	height int
	mode   playerbar.DisplayMode
	keys   keyMap
	help   help.Model
	status string
}

func newModel(svc playback.Service, sess *session.Manager, cfg *config.Config, notifier notify.Notifier, files []string, idx int) model {
	return model{
		svc:      svc,
		sess:     sess,
		cfg:      cfg,
		sub:      svc.Subscribe(),
		notifier: notifier,
		files:    files,
		idx:      idx,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tick(), waitEvent(m.sub), waitNativeLog())
}

func tick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitEvent forwards service events into the bubbletea loop.
func waitEvent(sub *playback.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-sub.TrackChanged:
			return trackChangedMsg{path: e.Current}
		case e := <-sub.Finished:
			return finishedMsg{path: e.Path}
		case e := <-sub.Error:
			return playbackErrMsg{text: errmsg.FormatWith(errmsg.Op(e.Operation), e.Path, e.Err)}
		case <-sub.Done:
			return nil
		}
	}
}

// waitNativeLog surfaces captured native stderr lines in the status row.
func waitNativeLog() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil
		}
		return nativeLogMsg(line)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.sess != nil && m.svc.State().IsActive() {
			m.sess.Save(session.State{
				Volume:    m.svc.Volume(),
				Muted:     m.svc.Muted(),
				TrackPath: m.svc.CurrentPath(),
				Position:  m.svc.Position(),
			})
		}
		return m, tick()

	case trackChangedMsg:
		if m.notifier != nil && msg.path != "" {
			_ = m.notifier.Notify(notify.Notification{
				Title: m.svc.TrackTitle(),
				Body:  msg.path,
			})
		}
		return m, waitEvent(m.sub)

	case finishedMsg:
		if m.idx+1 < len(m.files) {
			m.idx++
			m.playCurrent()
		} else {
			m.status = "end of files"
		}
		return m, waitEvent(m.sub)

	case playbackErrMsg:
		m.status = msg.text
		return m, waitEvent(m.sub)

	case nativeLogMsg:
		m.status = string(msg)
		return m, waitNativeLog()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.PlayPause):
		if m.svc.IsStopped() && m.svc.CurrentPath() == "" && len(m.files) > 0 {
			m.playCurrent()
		} else if err := m.svc.Toggle(); err != nil {
			m.status = errmsg.Format(errmsg.OpStartPlayback, err)
		}

	case key.Matches(msg, m.keys.Stop):
		if err := m.svc.Stop(); err != nil {
			m.status = errmsg.Format(errmsg.OpStopPlayback, err)
		}

	case key.Matches(msg, m.keys.Next):
		if m.idx+1 < len(m.files) {
			m.idx++
			m.playCurrent()
		}

	case key.Matches(msg, m.keys.Prev):
		if m.idx > 0 {
			m.idx--
			m.playCurrent()
		}

	case key.Matches(msg, m.keys.SeekFwd):
		if err := m.svc.SeekBy(m.cfg.GetSeekStep()); err != nil {
			m.status = errmsg.Format(errmsg.OpSeek, err)
		}

	case key.Matches(msg, m.keys.SeekBack):
		if err := m.svc.SeekBy(-m.cfg.GetSeekStep()); err != nil {
			m.status = errmsg.Format(errmsg.OpSeek, err)
		}

	case key.Matches(msg, m.keys.VolUp):
		if err := m.svc.AdjustVolume(m.cfg.GetVolumeStep()); err != nil {
			m.status = errmsg.Format(errmsg.OpSetVolume, err)
		}
		m.saveVolume()

	case key.Matches(msg, m.keys.VolDown):
		if err := m.svc.AdjustVolume(-m.cfg.GetVolumeStep()); err != nil {
			m.status = errmsg.Format(errmsg.OpSetVolume, err)
		}
		m.saveVolume()

	case key.Matches(msg, m.keys.Mute):
		if err := m.svc.ToggleMute(); err != nil {
			m.status = errmsg.Format(errmsg.OpSetMute, err)
		}
		m.saveVolume()

	case key.Matches(msg, m.keys.ToggleView):
		if m.mode == playerbar.ModeCompact {
			m.mode = playerbar.ModeExpanded
		} else {
			m.mode = playerbar.ModeCompact
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// playCurrent opens and plays the selected file, reporting failures in the
// status row.
func (m *model) playCurrent() {
	path := m.files[m.idx]
	if err := m.svc.Open(path); err != nil {
		m.status = errmsg.FormatWith(errmsg.OpOpenFile, path, err)
		return
	}
	if err := m.svc.Play(); err != nil {
		m.status = errmsg.FormatWith(errmsg.OpStartPlayback, path, err)
		return
	}
	m.status = ""
}

func (m model) View() string {
	theme := styles.Default()

	header := theme.Muted().Render(fmt.Sprintf("yakoplay · file %d/%d", m.idx+1, len(m.files)))
	if len(m.files) == 0 {
		header = theme.Muted().Render("yakoplay · no files")
	}

	bar := playerbar.NewState(m.svc, m.mode).Render(m.width)
	if bar == "" {
		bar = theme.Muted().Render("stopped, press space to play")
	}

	status := ""
	if m.status != "" {
		status = theme.ErrorStyle().Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		bar,
		status,
		m.help.View(m.keys),
	)
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	icons.Init(cfg.Icons)

	files, err := collectFiles(os.Args[1:], cfg.DefaultFolder)
	if err != nil {
		return err
	}

	if err := stderr.Start(); err != nil {
		// Not fatal; native messages just stay on the real stderr.
		fmt.Fprintf(os.Stderr, "stderr capture unavailable: %v\n", err)
	}
	defer stderr.Stop()

	player, err := yako.New()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}

	svc := playback.New(player)
	defer svc.Close()

	var sess *session.Manager
	idx := 0
	if cfg.ShouldRestoreSession() {
		sess, err = session.Open()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", errmsg.Format(errmsg.OpSessionLoad, err))
		} else {
			defer sess.Close()
			idx = restoreSession(svc, sess, files)
		}
	}

	if cfg.MprisEnabled() {
		if adapter, err := mpris.New(svc); err == nil {
			defer adapter.Close()
		}
	}

	notifier := notify.New()
	defer notifier.Close()

	p := tea.NewProgram(newModel(svc, sess, cfg, notifier, files, idx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	if sess != nil {
		_ = sess.SaveNow(session.State{
			Volume:    svc.Volume(),
			Muted:     svc.Muted(),
			TrackPath: svc.CurrentPath(),
			Position:  svc.Position(),
		})
	}
	return nil
}

// restoreSession applies the saved volume and reloads the last track
// paused at its saved position. Returns the index of the restored track.
func restoreSession(svc playback.Service, sess *session.Manager, files []string) int {
	saved, err := sess.Get()
	if err != nil {
		return 0
	}

	_ = svc.SetVolume(saved.Volume)
	_ = svc.SetMuted(saved.Muted)

	for i, f := range files {
		if f == saved.TrackPath {
			if err := svc.Open(f); err == nil && saved.Position > 0 {
				_ = svc.SeekTo(saved.Position)
			}
			return i
		}
	}
	return 0
}

func (m *model) saveVolume() {
	if m.sess == nil {
		return
	}
	_ = m.sess.SaveNow(session.State{
		Volume:    m.svc.Volume(),
		Muted:     m.svc.Muted(),
		TrackPath: m.svc.CurrentPath(),
		Position:  m.svc.Position(),
	})
}

func main() {
	if err := run(); err != nil {
		stderr.WriteOriginal(err.Error() + "\n")
		os.Exit(1)
	}
}
