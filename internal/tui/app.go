// Package tui provides the interactive Bubble Tea dashboard for launchdash.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/launchdash/internal/cli"
	"github.com/theirongolddev/launchdash/internal/model"
	"github.com/theirongolddev/launchdash/internal/pipeline"
	"github.com/theirongolddev/launchdash/internal/theme"
	"github.com/theirongolddev/launchdash/internal/tui/components"
)

// Loaded is what a LoadFunc hands back on success.
type Loaded struct {
	Table    *pipeline.Table
	CacheHit bool
	// CacheErr is a non-fatal cache failure. The table is still valid.
	CacheErr error
}

// LoadFunc loads the launch table. It must not write to the terminal.
type LoadFunc func() (Loaded, error)

// DataLoadedMsg is sent when the data pipeline finishes.
type DataLoadedMsg struct {
	Loaded
	LoadTime time.Duration
	Err      error
}

// Options configure the dashboard.
type Options struct {
	DataFile   string
	Sites      []string // dropdown entries after ALL
	SliderStep float64
	Load       LoadFunc
}

// App is the root Bubble Tea model.
type App struct {
	opts Options

	// Data
	table    *pipeline.Table
	loaded   bool
	loadErr  error
	loadTime time.Duration
	cacheHit bool
	cacheErr error

	// Selection
	sites   []string // ALL followed by Options.Sites
	siteIdx int
	sel     model.Selection

	// Derived figures and how often each was recomputed
	pie          model.PieFigure
	scatter      model.ScatterFigure
	pieBuilds    int
	scatterBuild int

	// UI state
	width    int
	height   int
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	showHelp bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	maxStatusErr     = 48
)

// NewApp returns a dashboard that loads its data with opts.Load.
func NewApp(opts Options) App {
	if len(opts.Sites) == 0 {
		opts.Sites = model.DefaultSites
	}
	if opts.SliderStep <= 0 {
		opts.SliderStep = 1000
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		opts:    opts,
		sites:   append([]string{model.AllSites}, opts.Sites...),
		sel:     model.Selection{Site: model.AllSites},
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, loadDataCmd(a.opts.Load))
}

// loadDataCmd runs the loader off the UI goroutine.
func loadDataCmd(load LoadFunc) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		loaded, err := load()
		return DataLoadedMsg{Loaded: loaded, LoadTime: time.Since(start), Err: err}
	}
}

func (a *App) recomputePie() {
	a.pie = pipeline.DerivePie(a.table, a.sel.Site)
	a.pieBuilds++
}

func (a *App) recomputeScatter() {
	a.scatter = pipeline.DeriveScatter(a.table, a.sel)
	a.scatterBuild++
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.loadTime = msg.LoadTime
		if msg.Err != nil {
			a.loadErr = msg.Err
			return a, nil
		}
		a.table = msg.Table
		a.cacheHit = msg.CacheHit
		a.cacheErr = msg.CacheErr
		a.sel = a.table.FullSelection()
		a.recomputePie()
		a.recomputeScatter()
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}
	if !a.loaded {
		return a, nil
	}
	if a.loadErr != nil {
		// The error screen closes on any key.
		return a, tea.Quit
	}

	step := a.opts.SliderStep
	switch {
	case key.Matches(msg, a.keys.Help):
		a.showHelp = !a.showHelp
		a.help.ShowAll = a.showHelp
	case key.Matches(msg, a.keys.NextSite):
		a.selectSite(a.siteIdx + 1)
	case key.Matches(msg, a.keys.PrevSite):
		a.selectSite(a.siteIdx - 1)
	case key.Matches(msg, a.keys.LowDown):
		a.setPayload(a.sel.Payload.Low-step, a.sel.Payload.High)
	case key.Matches(msg, a.keys.LowUp):
		a.setPayload(min(a.sel.Payload.Low+step, a.sel.Payload.High), a.sel.Payload.High)
	case key.Matches(msg, a.keys.HighDown):
		a.setPayload(a.sel.Payload.Low, max(a.sel.Payload.High-step, a.sel.Payload.Low))
	case key.Matches(msg, a.keys.HighUp):
		a.setPayload(a.sel.Payload.Low, a.sel.Payload.High+step)
	case key.Matches(msg, a.keys.Reset):
		a.setPayload(a.table.PayloadBounds().Low, a.table.PayloadBounds().High)
	}
	return a, nil
}

// selectSite switches the dropdown entry. Both charts depend on the site.
func (a *App) selectSite(i int) {
	n := len(a.sites)
	a.siteIdx = ((i % n) + n) % n
	a.sel.Site = a.sites[a.siteIdx]
	a.recomputePie()
	a.recomputeScatter()
}

// setPayload moves the slider. Only the scatter depends on the range.
func (a *App) setPayload(low, high float64) {
	next := model.PayloadRange{Low: low, High: high}.Normalize(a.table.PayloadBounds())
	if next == a.sel.Payload {
		return
	}
	a.sel.Payload = next
	a.recomputeScatter()
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  launchdash needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.loadErr != nil {
		return a.viewError()
	}
	return a.viewMain()
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 3)
	logoStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	body := logoStyle.Render("◈ launchdash") + mutedStyle.Render(" · Launch Records") + "\n\n" +
		a.spinner.View() + mutedStyle.Render(" Loading "+a.opts.DataFile)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body))
}

func (a App) viewError() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Failure).
		Padding(1, 3).
		Width(min(a.width-4, 80))
	errStyle := lipgloss.NewStyle().Foreground(t.Failure).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	body := errStyle.Render("Could not load launch data") + "\n\n" +
		a.loadErr.Error() + "\n\n" +
		mutedStyle.Render("Press any key to exit")
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body))
}

func (a App) siteLabel() string {
	if model.IsAllSites(a.sel.Site) {
		return "All Sites"
	}
	return a.sel.Site
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("SpaceX Launch Records Dashboard"))
	b.WriteString("\n")

	// Dropdown row: every site, the active one highlighted.
	tabs := make([]string, len(a.sites))
	for i, s := range a.sites {
		label := s
		if i == 0 {
			label = "All Sites"
		}
		if i == a.siteIdx {
			tabs[i] = valueStyle.Render("[" + label + "]")
		} else {
			tabs[i] = mutedStyle.Render(" " + label + " ")
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	bounds := a.table.PayloadBounds()
	successes := 0
	for _, p := range a.scatter.Points {
		successes += p.Class
	}
	b.WriteString(components.MetricStrip([]components.Metric{
		{Label: "Site", Value: a.siteLabel(), Tone: components.ToneAccent},
		{Label: "Launches", Value: cli.FormatNumber(a.table.Len()), Note: fmt.Sprintf("%d sites", len(a.table.Sites()))},
		{Label: "Payload range", Value: cli.FormatRange(a.sel.Payload), Note: "of " + cli.FormatRange(bounds)},
		{
			Label: "Succeeded in range",
			Value: cli.FormatNumber(successes),
			Note:  cli.FormatShare(successes, len(a.scatter.Points)) + " of " + cli.FormatNumber(len(a.scatter.Points)),
			Tone:  components.ToneSuccess,
		},
	}, cw))
	b.WriteString("\n")

	inner := components.PanelInnerWidth(cw)
	b.WriteString(components.Panel(a.pie.Title, components.SliceBars(a.pie, inner), cw))
	b.WriteString("\n")
	b.WriteString(components.Panel(a.scatter.Title, components.StripPlot(a.scatter, inner), cw))
	b.WriteString("\n")

	b.WriteString(components.RenderStatusBar(cw, " "+a.help.View(a.keys), a.statusRight()))

	return b.String()
}

// statusRight describes where the data came from. A failed cache is shown
// here because the alt screen hides anything logged to stderr.
func (a App) statusRight() string {
	source := "parsed"
	switch {
	case a.cacheErr != nil:
		source = "parsed, cache off: " + truncate(a.cacheErr.Error(), maxStatusErr)
	case a.cacheHit:
		source = "cached"
	}
	return fmt.Sprintf("%s · %s in %s ", a.opts.DataFile, source, a.loadTime.Round(time.Millisecond))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
