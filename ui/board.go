// Copyright 2018 The ezgliding authors. All rights reserverd.

package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/ezgliding/flightboard"
)

const (
	loadingText = "loading Data...... please wait!"
	errorText   = "Opps! An error has occurred: "
	helpText    = "esc/ctrl+l clear search • ↑/↓ scroll • ctrl+c quit"
)

// loadedMsg carries the outcome of the single fetch.
type loadedMsg struct {
	result flightboard.Result
}

// Option configures a Model.
type Option func(*Model)

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(m *Model) { m.clock = clock }
}

// WithContext bounds the fetch.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// Model is the board: loading, failed, or a searchable table of flights.
type Model struct {
	ctx     context.Context
	fetcher flightboard.Fetcher
	clock   func() time.Time

	result  flightboard.Result
	view    flightboard.View
	input   textinput.Model
	table   table.Model
	spinner spinner.Model
	styles  Styles
}

// New returns a board that loads its flights from f.
func New(f flightboard.Fetcher, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Type the keyword"
	ti.Prompt = "Search by Departure and Destination Name: "
	ti.CharLimit = 64

	cols := make([]table.Column, 0, len(flightboard.Columns))
	for _, c := range flightboard.Columns {
		cols = append(cols, table.Column{Title: c, Width: 16})
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	m := Model{
		ctx:     context.Background(),
		fetcher: f,
		clock:   time.Now,
		input:   ti,
		table:   t,
		spinner: spinner.New(),
		styles:  DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m Model) load() tea.Msg {
	return loadedMsg{result: flightboard.Load(m.ctx, m.fetcher)}
}

// State reports where the load stands.
func (m Model) State() flightboard.LoadState {
	return m.result.State()
}

// Term is the current search term.
func (m Model) Term() string {
	return m.input.Value()
}

// Visible returns the flights currently listed.
func (m Model) Visible() []flightboard.Flight {
	return m.view.Flights
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.result.State() != flightboard.Ready {
			if msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
		return m.updateReady(msg)

	case loadedMsg:
		if m.result.State() != flightboard.Pending {
			log.Warn("ignoring second load result")
			return m, nil
		}
		m.result = msg.result
		if m.result.State() == flightboard.Ready {
			cmd := m.input.Focus()
			m.refresh()
			return m, cmd
		}
		return m, nil

	case spinner.TickMsg:
		if m.result.State() != flightboard.Pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		if h := msg.Height - 10; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil
	}

	if m.result.State() == flightboard.Ready {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateReady(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "esc", "ctrl+l":
		m.input.SetValue("")
		m.refresh()
		return m, nil
	case "up", "down", "pgup", "pgdown":
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// refresh re-filters the loaded flights for the current term.
func (m *Model) refresh() {
	m.view = flightboard.NewView(m.result.Flights(), m.input.Value(), m.clock())
	rows := make([]table.Row, 0, len(m.view.Flights))
	for _, r := range m.view.Rows() {
		rows = append(rows, table.Row(r))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
	log.WithFields(log.Fields{
		"term":    m.view.Term,
		"matches": len(m.view.Flights),
	}).Debug("board filtered")
}

// View renders the board.
func (m Model) View() string {
	switch m.result.State() {
	case flightboard.Pending:
		return m.spinner.View() + " " + m.styles.Title.Render(loadingText) + "\n"
	case flightboard.Failed:
		return m.styles.Error.Render(errorText+m.result.Err().Error()) + "\n"
	}

	var sb strings.Builder
	summary := m.view.Summary()
	sb.WriteString(m.styles.Title.Render(summary[0]))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Summary.Render(summary[1]))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Header.Render(summary[2]))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render(helpText))
	sb.WriteString("\n")
	return sb.String()
}
