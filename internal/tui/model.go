// Package tui is the interactive terminal browser
package tui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-tui/internal/errors"
	"github.com/KirkDiggler/pokedex-tui/internal/generation"
	"github.com/KirkDiggler/pokedex-tui/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex-tui/internal/pkg/requestid"
	"github.com/KirkDiggler/pokedex-tui/internal/search"
	"github.com/KirkDiggler/pokedex-tui/internal/sprites"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

type page int

const (
	pageInfo page = iota
	pageMoves
	pageEvolution
	pageCount
)

func (p page) String() string {
	switch p {
	case pageMoves:
		return "Moves"
	case pageEvolution:
		return "Evolution"
	default:
		return "Info"
	}
}

const (
	// header, tabs or search line, status and help
	chromeHeight = 4
	// used until the terminal reports its size
	defaultListRows = 20
)

// Config holds the dependencies for the browser
type Config struct {
	Service pokedex.Service
	// Sprites renders artwork on the info page. Nil disables sprites.
	Sprites     sprites.Renderer
	SpriteWidth int
	// Tracker issues request ids. A new one is used when nil.
	Tracker *requestid.Tracker
	// Context bounds every fetch. Background is used when nil.
	Context context.Context
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Service == nil {
		vb.RequiredField("Service")
	}
	errors.ValidateNonNegative("SpriteWidth", c.SpriteWidth, vb)

	return vb.Build()
}

// Model is the bubbletea model for the browser
type Model struct {
	svc         pokedex.Service
	sprites     sprites.Renderer
	spriteWidth int
	tracker     *requestid.Tracker
	ctx         context.Context

	keys   keyMap
	help   help.Model
	search textinput.Model

	viewport viewport.Model
	ready    bool
	width    int
	height   int

	screen    screen
	page      page
	searching bool

	results []search.Result
	cursor  int

	selected  pokemon.Ref
	detail    *pokemon.DisplayPokemon
	sprite    string
	moves     *pokedex.GetMovesOutput
	evolution *pokedex.GetEvolutionChainOutput

	loading bool
	err     error
}

// New creates the browser model
func New(cfg *Config) (*Model, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tracker := cfg.Tracker
	if tracker == nil {
		tracker = requestid.New()
	}
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	width := cfg.SpriteWidth
	if width == 0 {
		width = sprites.DefaultWidth
	}

	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "search by name or number"
	input.Cursor.SetMode(cursor.CursorStatic)

	return &Model{
		svc:         cfg.Service,
		sprites:     cfg.Sprites,
		spriteWidth: width,
		tracker:     tracker,
		ctx:         ctx,
		keys:        defaultKeyMap(),
		help:        help.New(),
		search:      input,
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return m.loadList()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case listLoadedMsg:
		if !m.isCurrent(msg.id, "list") {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.results = make([]search.Result, len(msg.refs))
			for i, ref := range msg.refs {
				m.results[i] = search.Result{Ref: ref}
			}
			m.cursor = 0
		}

	case searchResultsMsg:
		if !m.isCurrent(msg.id, "search") {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.results = msg.results
			m.cursor = 0
		}

	case detailLoadedMsg:
		if !m.isCurrent(msg.id, "detail") {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.detail = msg.pokemon
			m.sprite = msg.sprite
		}
		m.refreshViewport()

	case movesLoadedMsg:
		if !m.isCurrent(msg.id, "moves") {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.moves = msg.out
		}
		m.refreshViewport()

	case evolutionLoadedMsg:
		if !m.isCurrent(msg.id, "evolution") {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.evolution = msg.out
		}
		m.refreshViewport()
	}

	return m, nil
}

// isCurrent reports whether a result belongs to the latest request
func (m *Model) isCurrent(id uint64, kind string) bool {
	if m.tracker.IsCurrent(id) {
		return true
	}
	slog.Debug("discarding stale result",
		"kind", kind,
		"request", id,
		"current", m.tracker.Current())
	return false
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.screen == screenDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, m.openSelected()
	case tea.KeyUp:
		m.moveCursor(-1)
		return m, nil
	case tea.KeyDown:
		m.moveCursor(1)
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.runSearch(m.search.Value()))
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Open):
		return m, m.openSelected()
	case key.Matches(msg, m.keys.Back):
		if m.search.Value() != "" {
			m.search.SetValue("")
			return m, m.runSearch("")
		}
	case key.Matches(msg, m.keys.Generation):
		m.setGeneration(msg.String())
	}
	return m, nil
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.screen = screenList
		m.loading = false
		m.err = nil
		// anything still in flight for the detail is now stale
		m.tracker.Next()
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		m.page = (m.page + 1) % pageCount
		return m, m.loadPage()
	case key.Matches(msg, m.keys.PrevPage):
		m.page = (m.page + pageCount - 1) % pageCount
		return m, m.loadPage()
	case key.Matches(msg, m.keys.Generation):
		if m.setGeneration(msg.String()) {
			return m, m.loadPage()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// setGeneration switches the session generation from a digit key
func (m *Model) setGeneration(digit string) bool {
	gen, err := strconv.Atoi(digit)
	if err != nil {
		return false
	}
	if _, err := m.svc.SetGeneration(m.ctx, &pokedex.SetGenerationInput{Generation: gen}); err != nil {
		m.err = err
		return false
	}
	m.err = nil
	return true
}

func (m *Model) moveCursor(delta int) {
	if len(m.results) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.results)-1)
}

func (m *Model) openSelected() tea.Cmd {
	if len(m.results) == 0 {
		return nil
	}
	m.selected = m.results[m.cursor].Ref
	m.screen = screenDetail
	m.page = pageInfo
	m.detail = nil
	m.sprite = ""
	m.moves = nil
	m.evolution = nil
	return m.loadPage()
}

func (m *Model) loadList() tea.Cmd {
	id := m.tracker.Next()
	m.loading = true
	svc, ctx := m.svc, m.ctx

	return func() tea.Msg {
		out, err := svc.ListPokemon(ctx, &pokedex.ListPokemonInput{})
		if err != nil {
			return listLoadedMsg{id: id, err: err}
		}
		return listLoadedMsg{id: id, refs: out.Pokemon}
	}
}

func (m *Model) runSearch(query string) tea.Cmd {
	id := m.tracker.Next()
	m.loading = true
	svc, ctx := m.svc, m.ctx

	return func() tea.Msg {
		out, err := svc.SearchPokemon(ctx, &pokedex.SearchPokemonInput{Query: query})
		if err != nil {
			return searchResultsMsg{id: id, query: query, err: err}
		}
		return searchResultsMsg{id: id, query: query, results: out.Results}
	}
}

// loadPage fetches the active detail page for the selected pokemon
func (m *Model) loadPage() tea.Cmd {
	id := m.tracker.Next()
	m.loading = true
	m.err = nil
	m.refreshViewport()

	svc, ctx := m.svc, m.ctx
	renderer, width := m.sprites, m.spriteWidth
	idOrName := strconv.Itoa(m.selected.ID)

	switch m.page {
	case pageMoves:
		return func() tea.Msg {
			out, err := svc.GetMoves(ctx, &pokedex.GetMovesInput{IDOrName: idOrName})
			return movesLoadedMsg{id: id, out: out, err: err}
		}
	case pageEvolution:
		return func() tea.Msg {
			out, err := svc.GetEvolutionChain(ctx, &pokedex.GetEvolutionChainInput{IDOrName: idOrName})
			return evolutionLoadedMsg{id: id, out: out, err: err}
		}
	default:
		return func() tea.Msg {
			out, err := svc.GetPokemon(ctx, &pokedex.GetPokemonInput{IDOrName: idOrName})
			if err != nil {
				return detailLoadedMsg{id: id, err: err}
			}
			return detailLoadedMsg{
				id:      id,
				pokemon: out.Pokemon,
				sprite:  renderSprite(ctx, renderer, out.Pokemon, width),
			}
		}
	}
}

// renderSprite returns the art for p, a placeholder when rendering fails,
// or nothing when sprites are off
func renderSprite(ctx context.Context, renderer sprites.Renderer, p *pokemon.DisplayPokemon, width int) string {
	if renderer == nil {
		return ""
	}
	url := p.ArtworkURL
	if url == "" {
		url = p.SpriteURL
	}
	if url == "" {
		return ""
	}

	art, err := renderer.Render(ctx, url, width)
	if err != nil {
		slog.DebugContext(ctx, "sprite unavailable", "pokemon", p.Name, "error", err)
		return SpritePlaceholder
	}
	return art
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.search.Width = max(width-len(m.search.Prompt)-1, 0)

	vpHeight := max(height-chromeHeight, 1)
	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.pageContent())
	m.viewport.GotoTop()
}

func (m *Model) pageContent() string {
	switch m.page {
	case pageMoves:
		return RenderMoves(m.moves)
	case pageEvolution:
		return RenderEvolution(m.evolution)
	default:
		return RenderInfo(m.detail, m.sprite)
	}
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")

	if m.screen == screenDetail {
		b.WriteString(m.tabsView())
		b.WriteString("\n")
		if m.ready {
			b.WriteString(m.viewport.View())
		} else {
			b.WriteString(m.pageContent())
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.search.View())
		b.WriteString("\n")
		b.WriteString(m.listView())
	}

	b.WriteString(m.statusView())
	b.WriteString("\n")
	if m.screen == screenDetail {
		b.WriteString(m.help.View(detailKeys(m.keys)))
	} else {
		b.WriteString(m.help.View(listKeys(m.keys)))
	}

	return b.String()
}

func (m *Model) headerView() string {
	gen := m.svc.Generation()
	header := headerStyle.Render("Pokédex") + " " +
		generationStyle.Render(generation.Label(gen))
	if vg, ok := generation.LatestVersionGroup(gen); ok {
		header += " " + subtleStyle.Render(displayName(vg))
	}
	if m.screen == screenDetail {
		header += "  " + titleStyle.Render(dexNumber(m.selected.ID)+" "+displayName(m.selected.Name))
	}
	return header
}

func (m *Model) tabsView() string {
	tabs := make([]string, pageCount)
	for p := range pageCount {
		style := tabStyle
		if p == m.page {
			style = activeTabStyle
		}
		tabs[p] = style.Render(p.String())
	}
	return strings.Join(tabs, " ")
}

func (m *Model) listView() string {
	if len(m.results) == 0 {
		if m.loading {
			return ""
		}
		return subtleStyle.Render("No matches.") + "\n"
	}

	rows := defaultListRows
	if m.height > 0 {
		rows = max(m.height-chromeHeight, 1)
	}
	start := min(max(m.cursor-rows/2, 0), max(len(m.results)-rows, 0))
	end := min(start+rows, len(m.results))

	var b strings.Builder
	for i := start; i < end; i++ {
		r := m.results[i]
		line := dexNumber(r.Ref.ID) + " " + highlight(r.Ref.Name, r.MatchedIndexes)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) statusView() string {
	switch {
	case m.err != nil:
		return errorStyle.Render(errors.GetMessage(m.err))
	case m.loading:
		return subtleStyle.Render("Loading...")
	default:
		return ""
	}
}

// highlight marks the matched byte positions of name
func highlight(name string, matched []int) string {
	if len(matched) == 0 {
		return name
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	var b strings.Builder
	for i, r := range name {
		if hit[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
