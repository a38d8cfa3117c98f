package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sling.app/cli/internal/core/catalog"
	"sling.app/cli/internal/core/icon"
)

const (
	maxVisibleRows = 12
	previewCells   = 16
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// scanDoneMsg signals that the background catalog refresh finished.
type scanDoneMsg struct {
	err error
}

// iconMsg carries a resolved (or failed, bmp == nil) icon bitmap.
type iconMsg struct {
	ref string
	bmp *icon.Bitmap
}

// pickerModel is the Bubble Tea model for the interactive picker. It only
// ever reads catalog snapshots; the scan runs on its own goroutine and
// reports through scanDoneMsg.
type pickerModel struct {
	container *CLIContainer

	search textinput.Model
	spin   spinner.Model

	records  []catalog.Record
	filtered []catalog.Record
	cursor   int

	preview    *icon.Bitmap
	previewRef string

	scanning bool
	errText  string
	launched string

	width  int
	height int
}

func newPickerModel(container *CLIContainer) pickerModel {
	search := textinput.New()
	search.Placeholder = "Search applications..."
	search.Prompt = "> "
	search.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = spinnerStyle

	return pickerModel{
		container: container,
		search:    search,
		spin:      spin,
		scanning:  true,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick, m.scanCmd())
}

// scanCmd kicks off the background refresh and waits for its completion
// signal without blocking the UI loop.
func (m pickerModel) scanCmd() tea.Cmd {
	done := m.container.Catalog.RefreshAsync(context.Background())
	return func() tea.Msg {
		return scanDoneMsg{err: <-done}
	}
}

// loadIconCmd resolves the selected record's icon off the UI loop. The icon
// service memoizes, so revisiting a record is a cache hit.
func (m pickerModel) loadIconCmd() tea.Cmd {
	if m.cursor >= len(m.filtered) {
		return nil
	}
	rec := m.filtered[m.cursor]
	if !rec.HasIcon() {
		return nil
	}

	ref := rec.Icon()
	svc := m.container.Icons
	return func() tea.Msg {
		return iconMsg{ref: ref, bmp: svc.Resolve(ref)}
	}
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case scanDoneMsg:
		m.scanning = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.records = m.container.Catalog.Snapshot()
		m.refilter()
		// selectionChanged records the previewRef so the iconMsg for the
		// initially selected record is not discarded on arrival.
		return m.selectionChanged()

	case iconMsg:
		if msg.ref == m.previewRef {
			m.preview = msg.bmp
		}
		return m, nil

	case spinner.TickMsg:
		if !m.scanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "ctrl+k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m.selectionChanged()

		case "down", "ctrl+j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m.selectionChanged()

		case "enter":
			return m.launchSelected()
		}
	}

	// Everything else feeds the search box.
	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.refilter()
		updated, iconCmd := m.selectionChanged()
		return updated, tea.Batch(cmd, iconCmd)
	}
	return m, cmd
}

// launchSelected spawns the selected record's command. Spawn failures stay
// on screen; a successful spawn closes the picker.
func (m pickerModel) launchSelected() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.filtered) {
		return m, nil
	}
	rec := m.filtered[m.cursor]

	if err := m.container.Launcher.Launch(rec.Command()); err != nil {
		m.errText = fmt.Sprintf("Failed to launch %s: %v", rec.Name(), err)
		return m, nil
	}

	m.launched = rec.Name()
	return m, tea.Quit
}

func (m pickerModel) selectionChanged() (pickerModel, tea.Cmd) {
	m.preview = nil
	m.previewRef = ""
	if m.cursor < len(m.filtered) {
		m.previewRef = m.filtered[m.cursor].Icon()
	}
	return m, m.loadIconCmd()
}

func (m *pickerModel) refilter() {
	m.filtered = filterRecords(m.records, m.search.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
	m.errText = ""
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select an application to launch"))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	switch {
	case m.scanning:
		b.WriteString(m.spin.View() + " scanning applications...\n")
	case len(m.filtered) == 0:
		b.WriteString(dimStyle.Render("No applications match") + "\n")
	default:
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), "  ", m.previewView()))
		b.WriteString("\n")
	}

	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText) + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("↑/↓ move · enter launch · esc quit"))
	return b.String()
}

func (m pickerModel) listView() string {
	start := 0
	if m.cursor >= maxVisibleRows {
		start = m.cursor - maxVisibleRows + 1
	}
	end := start + maxVisibleRows
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	var rows []string
	for i := start; i < end; i++ {
		name := m.filtered[i].Name()
		if i == m.cursor {
			rows = append(rows, selectedStyle.Render("  "+name+"  "))
		} else {
			rows = append(rows, "  "+name)
		}
	}
	rows = append(rows, dimStyle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.filtered))))
	return strings.Join(rows, "\n")
}

func (m pickerModel) previewView() string {
	if m.cursor >= len(m.filtered) {
		return ""
	}
	rec := m.filtered[m.cursor]

	art := renderBitmap(m.preview, previewCells)
	details := dimStyle.Render(rec.Command())
	return lipgloss.JoinVertical(lipgloss.Left, art, "", details)
}
