// Package tui provides the interactive Bubble Tea dashboard for runway.
package tui

import (
	"fmt"
	"strings"

	"runway/internal/config"
	"runway/internal/engine"
	"runway/internal/model"
	"runway/internal/tui/components"
	"runway/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5

	minMonths = 1
	maxMonths = 60
)

// App is the root Bubble Tea model.
type App struct {
	// Inputs
	cfg       config.Config
	inputs    model.Inputs
	months    int
	gm        model.GrowthModel
	scenarios []model.Scenario

	// Computed per recompute()
	snapshot    model.MetricsSnapshot
	projections []model.ScenarioProjection
	revenue     model.Series
	b2bFlow     model.CustomerFlow
	b2cFlow     model.CustomerFlow
	computeErr  error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

// NewApp creates the dashboard model from loaded configuration and the
// effective inputs (config, latest snapshot, or flag overrides).
func NewApp(cfg config.Config, inputs model.Inputs, months int) App {
	theme.SetActive(cfg.Appearance.Theme)

	gm, ok := model.ParseGrowthModel(cfg.Revenue.Model)
	if !ok {
		gm = model.GrowthFixed
	}
	if months < minMonths {
		months = cfg.Projection.Months
	}
	if months < minMonths {
		months = 12
	}

	a := App{
		cfg:       cfg,
		inputs:    inputs,
		months:    months,
		gm:        gm,
		scenarios: config.ResolveScenarios(cfg),
		needSetup: !config.Exists(),
	}
	if a.needSetup {
		a.setupVals = setupValuesFrom(inputs, cfg)
		a.setupForm = newSetupForm(&a.setupVals)
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

func (a *App) recompute() {
	a.computeErr = nil

	snapshot, err := engine.Evaluate(a.inputs, a.cfg.Revenue.Previous)
	if err != nil {
		a.computeErr = err
		return
	}
	a.snapshot = snapshot

	a.revenue, err = engine.ProjectRevenue(a.inputs.MonthlyRevenue, a.months, a.gm,
		a.cfg.Revenue.LinearPct, a.cfg.Revenue.ExponentialPct)
	if err != nil {
		a.computeErr = err
		return
	}

	a.projections, err = engine.ProjectScenarios(a.inputs.CashBalance, a.inputs.MonthlyRevenue,
		a.inputs.MonthlyExpenses, a.months, a.gm,
		a.cfg.Revenue.LinearPct, a.cfg.Revenue.ExponentialPct, a.scenarios)
	if err != nil {
		a.computeErr = err
		return
	}

	a.b2bFlow, err = a.segmentFlow(a.inputs.B2B, a.cfg.B2B)
	if err != nil {
		a.computeErr = err
		return
	}
	a.b2cFlow, err = a.segmentFlow(a.inputs.B2C, a.cfg.B2C)
	if err != nil {
		a.computeErr = err
	}
}

func (a *App) segmentFlow(seg model.Segment, sc config.SegmentConfig) (model.CustomerFlow, error) {
	gm, ok := model.ParseGrowthModel(sc.Model)
	if !ok {
		gm = model.GrowthFixed
	}
	return engine.ProjectCustomerFlow(seg, a.months, gm, sc.LinearPct, sc.ExponentialPct)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "m":
			// Cycle the revenue growth model
			switch a.gm {
			case model.GrowthFixed:
				a.gm = model.GrowthLinear
			case model.GrowthLinear:
				a.gm = model.GrowthExponential
			default:
				a.gm = model.GrowthFixed
			}
			a.recompute()
		case "+", "=":
			if a.months < maxMonths {
				a.months++
				a.recompute()
			}
		case "-":
			if a.months > minMonths {
				a.months--
				a.recompute()
			}
		case "1", "2", "3":
			a.activeTab = int(key[0] - '1')
		case "left", "h":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "l", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if tab := components.TabIdxByKey(rune(key[0])); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  runway needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	bindings := []struct{ key, desc string }{
		{"f g c", "Jump to tab"},
		{"← → 1-3", "Switch tabs"},
		{"m", "Cycle growth model"},
		{"+ -", "Projection horizon"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-9s", bind.key)),
			descStyle.Render(bind.desc))
	}

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	left := " [?]help  [m]odel  [+/-]months  [q]uit"
	right := fmt.Sprintf("%s · %d mo ", a.gm, a.months)
	statusBar := components.RenderStatusBar(w, left, right)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	if a.computeErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Background)
		content = errStyle.Render(fmt.Sprintf("\n  %v\n", a.computeErr))
	} else {
		switch a.activeTab {
		case 0:
			content = a.renderFinancialsTab(cw)
		case 1:
			content = a.renderGrowthTab(cw)
		case 2:
			content = a.renderCustomersTab(cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, maxLines int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}
	return strings.Join(lines[:maxLines], "\n")
}

func padHeight(s string, minLines int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= minLines {
		return s
	}
	return s + strings.Repeat("\n", minLines-lines)
}
