// Package tui is the interactive calculator: four dropdowns and the live result labels.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/napolitain/industrialist-calc/internal/calculator"
	"github.com/napolitain/industrialist-calc/internal/display"
)

type dropdown int

const (
	drillHeadDropdown dropdown = iota
	acidDropdown
	oilDropdown
	depthDropdown
	dropdownCount
)

func (d dropdown) title() string {
	switch d {
	case drillHeadDropdown:
		return "Drillhead"
	case acidDropdown:
		return "Acid"
	case oilDropdown:
		return "Oil"
	default:
		return "Depth"
	}
}

// SelectMsg replaces the whole selection, e.g. from a caller driving the program
type SelectMsg struct {
	Selection calculator.Selection
}

// Model owns the current selection. Every change recomputes the metrics before the next render.
type Model struct {
	calc      *calculator.Calculator
	selection calculator.Selection
	metrics   *calculator.Metrics
	report    display.Report

	focus  dropdown
	open   bool
	cursor int

	quitting bool
}

// New creates the model and computes the initial metrics
func New(calc *calculator.Calculator, sel calculator.Selection) Model {
	return Model{calc: calc}.withSelection(sel)
}

// Run starts the interactive program and blocks until the user quits
func Run(calc *calculator.Calculator, sel calculator.Selection) error {
	_, err := tea.NewProgram(New(calc, sel)).Run()
	return err
}

func (m Model) Selection() calculator.Selection { return m.selection }
func (m Model) Metrics() *calculator.Metrics    { return m.metrics }
func (m Model) Report() display.Report          { return m.report }

func (m Model) withSelection(sel calculator.Selection) Model {
	m.selection = sel
	m.metrics = m.calc.Compute(sel)
	m.report = display.Render(m.calc.Tables(), m.metrics)
	return m
}

// options returns the labels of a dropdown in table order
func (m Model) options(d dropdown) []string {
	t := m.calc.Tables()
	var out []string
	switch d {
	case drillHeadDropdown:
		for _, h := range t.DrillHeads() {
			out = append(out, h.DropdownText)
		}
	case acidDropdown:
		for _, a := range t.Acids() {
			out = append(out, a.DropdownText)
		}
	case oilDropdown:
		for _, o := range t.Oils() {
			out = append(out, o.DropdownText)
		}
	case depthDropdown:
		for _, id := range t.DepthIDs() {
			out = append(out, id.String())
		}
	}
	return out
}

// selectedIndex is the option of d matching the current selection
func (m Model) selectedIndex(d dropdown) int {
	t := m.calc.Tables()
	switch d {
	case drillHeadDropdown:
		for i, h := range t.DrillHeads() {
			if h.ID == m.selection.DrillHead {
				return i
			}
		}
	case acidDropdown:
		for i, a := range t.Acids() {
			if a.ID == m.selection.Acid {
				return i
			}
		}
	case oilDropdown:
		for i, o := range t.Oils() {
			if o.ID == m.selection.Oil {
				return i
			}
		}
	case depthDropdown:
		for i, id := range t.DepthIDs() {
			if id == m.selection.Depth {
				return i
			}
		}
	}
	return 0
}

// choose applies option i of dropdown d to the selection
func (m Model) choose(d dropdown, i int) calculator.Selection {
	t := m.calc.Tables()
	sel := m.selection
	switch d {
	case drillHeadDropdown:
		sel = sel.WithDrillHead(t.DrillHeads()[i].ID)
	case acidDropdown:
		sel = sel.WithAcid(t.Acids()[i].ID)
	case oilDropdown:
		sel = sel.WithOil(t.Oils()[i].ID)
	case depthDropdown:
		sel = sel.WithDepth(t.DepthIDs()[i])
	}
	return sel
}

func (m Model) buttonText(d dropdown) string {
	t := m.calc.Tables()
	var value string
	switch d {
	case drillHeadDropdown:
		value = t.DrillHead(m.selection.DrillHead).DropdownText
	case acidDropdown:
		value = t.Acid(m.selection.Acid).DropdownText
	case oilDropdown:
		value = t.Oil(m.selection.Oil).DropdownText
	case depthDropdown:
		value = m.selection.Depth.String()
	}
	return d.title() + " — " + value
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SelectMsg:
		m.open = false
		return m.withSelection(msg.Selection), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "q":
		if !m.open {
			m.quitting = true
			return m, tea.Quit
		}
	case "esc":
		m.open = false
	case "tab", "right", "l":
		if !m.open {
			m.focus = (m.focus + 1) % dropdownCount
		}
	case "shift+tab", "left", "h":
		if !m.open {
			m.focus = (m.focus + dropdownCount - 1) % dropdownCount
		}
	case "up", "k":
		if m.open && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.open && m.cursor < len(m.options(m.focus))-1 {
			m.cursor++
		}
	case "enter", " ":
		if !m.open {
			m.open = true
			m.cursor = m.selectedIndex(m.focus)
			return m, nil
		}
		m.open = false
		return m.withSelection(m.choose(m.focus, m.cursor)), nil
	}
	return m, nil
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	buttonStyle  = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	focusStyle   = buttonStyle.BorderForeground(lipgloss.Color("11")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	sectionStyle = lipgloss.NewStyle().MarginTop(1)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("⛏️  Mineshaft Drill Calculator"))
	b.WriteString("\n")

	buttons := make([]string, dropdownCount)
	for d := dropdown(0); d < dropdownCount; d++ {
		style := buttonStyle
		if d == m.focus {
			style = focusStyle
		}
		buttons[d] = style.Render(m.buttonText(d))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	b.WriteString("\n")

	if m.open {
		for i, opt := range m.options(m.focus) {
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> " + opt))
			} else {
				b.WriteString("  " + opt)
			}
			b.WriteString("\n")
		}
	}

	r := m.report
	efficiency := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(display.EfficiencyColor(m.metrics.Efficiency))).
		Render(display.Percent(m.metrics.Efficiency))

	stats := []string{r.Deterioration, r.Lifetime, r.Replacement, r.Cycle, "🔧 Efficiency: " + efficiency}
	rates := []string{r.DrillHead, r.Materials, r.Acid, r.Oil, r.Power}
	b.WriteString(sectionStyle.Render(strings.Join(stats, "\n")))
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(strings.Join(rates, "\n")))
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(strings.Join(r.Outputs[:], "\n")))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("tab/←→ switch • enter open/select • ↑↓ move • esc close • q quit (%d/%d)",
		m.focus+1, dropdownCount)))
	b.WriteString("\n")
	return b.String()
}

var _ tea.Model = Model{}
