package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/tuios-layout/internal/config"
	"github.com/Gaurav-Gosain/tuios-layout/internal/layout"
	"github.com/Gaurav-Gosain/tuios-layout/internal/render"
	"github.com/Gaurav-Gosain/tuios-layout/internal/tape"
	"github.com/Gaurav-Gosain/tuios-layout/internal/wm"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	nextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// configReloadedMsg carries the result of a config file change.
type configReloadedMsg struct {
	cfg *config.Config
	err error
}

// playModel steps a script against a live State. Every applied command,
// from the script or from a key, goes through the recorder so the session
// can be rebuilt for Back and saved with --record.
type playModel struct {
	cfg      *config.Config
	registry *config.KeybindRegistry
	state    *wm.State
	player   *tape.Player
	recorder *tape.Recorder
	scripted []bool // parallel to the recorder: true for script commands

	lastErr  error
	notice   string
	showHelp bool
	width    int
	height   int
}

func newPlayModel(cfg *config.Config, commands []tape.Command) (*playModel, error) {
	state, err := wm.New(wm.OptionsFromConfig(cfg))
	if err != nil {
		return nil, err
	}
	return &playModel{
		cfg:      cfg,
		registry: config.NewKeybindRegistry(cfg),
		state:    state,
		player:   tape.NewPlayer(commands),
		recorder: tape.NewRecorder(),
		width:    defaultWidth,
		height:   defaultHeight,
	}, nil
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case configReloadedMsg:
		if msg.err != nil {
			m.notice = ""
			m.lastErr = fmt.Errorf("config reload: %w", msg.err)
			return m, nil
		}
		m.cfg = msg.cfg
		m.registry = config.NewKeybindRegistry(msg.cfg)
		m.notice = "Configuration reloaded"

	case tea.KeyPressMsg:
		return m, m.handleAction(m.registry.GetAction(msg.String()))
	}
	return m, nil
}

func (m *playModel) handleAction(action string) tea.Cmd {
	m.notice = ""
	switch action {
	case "":
		return nil
	case config.ActionQuit:
		return tea.Quit
	case config.ActionToggleHelp:
		m.showHelp = !m.showHelp
	case config.ActionStep:
		m.step()
	case config.ActionRunAll:
		for !m.player.IsFinished() {
			m.step()
		}
	case config.ActionBack:
		m.back()
	case config.ActionReset:
		m.reset()
	default:
		if cmd, ok := tape.CommandForAction(action); ok {
			m.apply(cmd, false)
		}
	}
	return nil
}

func (m *playModel) step() {
	cmd := m.player.NextCommand()
	if cmd == nil {
		return
	}
	m.player.Advance()
	m.apply(*cmd, true)
}

func (m *playModel) apply(cmd tape.Command, scripted bool) {
	m.recorder.Record(cmd)
	m.scripted = append(m.scripted, scripted)
	m.lastErr = tape.Execute(m.state, &cmd, io.Discard)
}

// back undoes the last applied command by replaying everything before it
// on a fresh state.
func (m *playModel) back() {
	n := m.recorder.CommandCount()
	if n == 0 {
		return
	}
	undoScripted := m.scripted[n-1]
	history := m.recorder.GetCommands()[:n-1]
	scripted := m.scripted[:n-1]

	state, err := wm.New(wm.OptionsFromConfig(m.cfg))
	if err != nil {
		m.lastErr = err
		return
	}
	m.state = state
	m.recorder.Truncate(n - 1)
	m.scripted = scripted
	m.lastErr = nil
	for i := range history {
		m.lastErr = tape.Execute(m.state, &history[i], io.Discard)
	}

	if undoScripted {
		index := m.player.CurrentIndex() - 1
		m.player.Reset()
		for range index {
			m.player.Advance()
		}
	}
}

func (m *playModel) reset() {
	state, err := wm.New(wm.OptionsFromConfig(m.cfg))
	if err != nil {
		m.lastErr = err
		return
	}
	m.state = state
	m.player.Reset()
	m.recorder.Clear()
	m.scripted = nil
	m.lastErr = nil
}

func (m *playModel) View() tea.View {
	var sb strings.Builder

	status := fmt.Sprintf("step %d/%d (%d%%)  workspace %d",
		m.player.CurrentIndex(), m.player.TotalCommands(), m.player.Progress(), m.state.CurrentIndex())
	if o, ok := m.state.Pending(); ok {
		status += "  pending split " + o.String()
	}
	sb.WriteString(titleStyle.Render("tuios-layout") + "  " + statusStyle.Render(status) + "\n")
	sb.WriteString(nextStyle.Render("next: "+m.player.CommandStr()) + "\n\n")

	sb.WriteString(render.Tree(m.state.Root(), m.state.FocusedWindow()) + "\n\n")

	gaps := layout.Gaps{Inner: m.cfg.Layout.InnerGap, Outer: m.cfg.Layout.OuterGap}
	monitor := layout.Rect{Width: m.width, Height: m.height}
	if placements := layout.Compute(m.state.CurrentWorkspace(), monitor, gaps); len(placements) > 0 {
		sb.WriteString(render.Placements(placements, m.state.FocusedWindow()) + "\n")
	}

	if m.lastErr != nil {
		sb.WriteString(errorStyle.Render("error: "+m.lastErr.Error()) + "\n")
	} else if m.notice != "" {
		sb.WriteString(statusStyle.Render(m.notice) + "\n")
	}

	if m.showHelp {
		sb.WriteString("\n")
		for _, b := range m.registry.Bindings() {
			fmt.Fprintf(&sb, "  %-18s %s\n", b.Key, b.Description)
		}
	} else {
		sb.WriteString(helpStyle.Render("press "+m.registry.GetKeysForDisplay(config.ActionToggleHelp)+" for help"))
	}

	var view tea.View
	view.SetContent(sb.String())
	view.AltScreen = true
	return view
}

func playScript(ctx context.Context, file, recordPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var commands []tape.Command
	if file != "" {
		commands, err = tape.ReadFile(file)
		if err != nil {
			return err
		}
	}

	model, err := newPlayModel(cfg, commands)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if path, err := resolveConfigPath(); err == nil {
		go func() {
			err := config.Watch(watchCtx, path, func(cfg *config.Config, err error) {
				p.Send(configReloadedMsg{cfg: cfg, err: err})
			})
			if err != nil {
				logger.Debug("config watch stopped", "err", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	if recordPath != "" {
		header := "Recorded with tuios-layout play"
		if file != "" {
			header += " from " + file
		}
		if err := model.recorder.WriteToFile(recordPath, header); err != nil {
			return err
		}
		fmt.Printf("Session saved to %s (%d commands)\n", recordPath, model.recorder.CommandCount())
	}
	return nil
}
