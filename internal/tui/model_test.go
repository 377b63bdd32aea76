package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-tui/internal/errors"
	"github.com/KirkDiggler/pokedex-tui/internal/orchestrators/pokedex"
	pokedexmock "github.com/KirkDiggler/pokedex-tui/internal/orchestrators/pokedex/mock"
	"github.com/KirkDiggler/pokedex-tui/internal/search"
	spritesmock "github.com/KirkDiggler/pokedex-tui/internal/sprites/mock"
)

type ModelTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockService  *pokedexmock.MockService
	mockRenderer *spritesmock.MockRenderer
	model        *Model
	refs         []pokemon.Ref
}

func TestModelSuite(t *testing.T) {
	suite.Run(t, new(ModelTestSuite))
}

func (s *ModelTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = pokedexmock.NewMockService(s.ctrl)
	s.mockRenderer = spritesmock.NewMockRenderer(s.ctrl)
	s.refs = []pokemon.Ref{
		{ID: 1, Name: "bulbasaur"},
		{ID: 4, Name: "charmander"},
		{ID: 25, Name: "pikachu"},
	}

	s.mockService.EXPECT().Generation().Return(9).AnyTimes()

	model, err := New(&Config{
		Service:     s.mockService,
		Sprites:     s.mockRenderer,
		SpriteWidth: 30,
	})
	s.Require().NoError(err)
	s.model = model
}

func (s *ModelTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// runCmd executes cmd and any batched commands, returning their messages
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// send delivers msg and feeds every resulting message back into the model
func (s *ModelTestSuite) send(msg tea.Msg) {
	_, cmd := s.model.Update(msg)
	for _, next := range runCmd(cmd) {
		s.send(next)
	}
}

func keyRunes(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func (s *ModelTestSuite) loadList() {
	s.mockService.EXPECT().
		ListPokemon(gomock.Any(), gomock.Any()).
		Return(&pokedex.ListPokemonOutput{Pokemon: s.refs}, nil)

	s.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	for _, msg := range runCmd(s.model.Init()) {
		s.send(msg)
	}
}

func pikachu() *pokemon.DisplayPokemon {
	return &pokemon.DisplayPokemon{
		ID:           25,
		Name:         "pikachu",
		DisplayName:  "Pikachu",
		Generation:   9,
		IntroducedIn: 1,
		Types:        []string{"electric"},
		Abilities:    []pokemon.DisplayAbility{{Name: "static", DisplayName: "Static", Description: "May paralyze on contact."}},
		Height:       "0.4 m",
		Weight:       "6.0 kg",
		Stats:        []pokemon.DisplayStat{{Name: "speed", Label: "Speed", Base: 90}},
		StatTotal:    90,
		EVYield:      "2 Speed",
		FlavorText:   "It stores electricity in its cheeks.",
		ArtworkURL:   "https://example.test/artwork/25.png",
	}
}

func (s *ModelTestSuite) openPikachu(art string, artErr error) {
	s.loadList()
	s.send(tea.KeyMsg{Type: tea.KeyDown})
	s.send(tea.KeyMsg{Type: tea.KeyDown})

	s.mockService.EXPECT().
		GetPokemon(gomock.Any(), &pokedex.GetPokemonInput{IDOrName: "25"}).
		Return(&pokedex.GetPokemonOutput{Pokemon: pikachu()}, nil)
	s.mockRenderer.EXPECT().
		Render(gomock.Any(), "https://example.test/artwork/25.png", 30).
		Return(art, artErr)

	s.send(tea.KeyMsg{Type: tea.KeyEnter})
}

func (s *ModelTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = New(&Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = New(&Config{Service: s.mockService, SpriteWidth: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ModelTestSuite) TestInitLoadsList() {
	s.loadList()

	s.False(s.model.loading)
	s.Require().Len(s.model.results, 3)
	s.Equal("bulbasaur", s.model.results[0].Ref.Name)
	s.Contains(s.model.View(), "#025 pikachu")
	s.Contains(s.model.View(), "Gen IX")
}

func (s *ModelTestSuite) TestListFailureIsShown() {
	s.mockService.EXPECT().
		ListPokemon(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("catalog unreachable"))

	for _, msg := range runCmd(s.model.Init()) {
		s.send(msg)
	}

	s.Error(s.model.err)
	s.Contains(s.model.View(), "catalog unreachable")
}

func (s *ModelTestSuite) TestCursorStaysInBounds() {
	s.loadList()

	s.send(tea.KeyMsg{Type: tea.KeyUp})
	s.Equal(0, s.model.cursor)

	for range 5 {
		s.send(keyRunes("j"))
	}
	s.Equal(2, s.model.cursor)
}

func (s *ModelTestSuite) TestSearchAsYouType() {
	s.loadList()

	gomock.InOrder(
		s.mockService.EXPECT().
			SearchPokemon(gomock.Any(), &pokedex.SearchPokemonInput{Query: "p"}).
			Return(&pokedex.SearchPokemonOutput{Results: []search.Result{{Ref: s.refs[2]}}}, nil),
		s.mockService.EXPECT().
			SearchPokemon(gomock.Any(), &pokedex.SearchPokemonInput{Query: "pi"}).
			Return(&pokedex.SearchPokemonOutput{Results: []search.Result{{Ref: s.refs[2], MatchedIndexes: []int{0, 1}}}}, nil),
	)

	s.send(keyRunes("/"))
	s.True(s.model.searching)

	s.send(keyRunes("p"))
	s.send(keyRunes("i"))

	s.Equal("pi", s.model.search.Value())
	s.Require().Len(s.model.results, 1)
	s.Equal("pikachu", s.model.results[0].Ref.Name)
}

func (s *ModelTestSuite) TestDigitsTypeWhileSearching() {
	s.loadList()

	s.mockService.EXPECT().
		SearchPokemon(gomock.Any(), &pokedex.SearchPokemonInput{Query: "4"}).
		Return(&pokedex.SearchPokemonOutput{Results: []search.Result{{Ref: s.refs[1]}}}, nil)

	s.send(keyRunes("/"))
	s.send(keyRunes("4"))

	s.Equal("4", s.model.search.Value())
	s.Equal("charmander", s.model.results[0].Ref.Name)
}

func (s *ModelTestSuite) TestStaleSearchResultIsDiscarded() {
	s.loadList()

	s.mockService.EXPECT().
		SearchPokemon(gomock.Any(), &pokedex.SearchPokemonInput{Query: "b"}).
		Return(&pokedex.SearchPokemonOutput{Results: []search.Result{{Ref: s.refs[0]}}}, nil)
	s.mockService.EXPECT().
		SearchPokemon(gomock.Any(), &pokedex.SearchPokemonInput{Query: "c"}).
		Return(&pokedex.SearchPokemonOutput{Results: []search.Result{{Ref: s.refs[1]}}}, nil)

	older := s.model.runSearch("b")
	newer := s.model.runSearch("c")

	// The newer request finishes first
	s.send(newer())
	s.send(older())

	s.Require().Len(s.model.results, 1)
	s.Equal("charmander", s.model.results[0].Ref.Name)
}

func (s *ModelTestSuite) TestEscClearsFilter() {
	s.loadList()

	s.mockService.EXPECT().
		SearchPokemon(gomock.Any(), &pokedex.SearchPokemonInput{Query: "c"}).
		Return(&pokedex.SearchPokemonOutput{Results: []search.Result{{Ref: s.refs[1]}}}, nil)
	s.mockService.EXPECT().
		SearchPokemon(gomock.Any(), &pokedex.SearchPokemonInput{Query: ""}).
		Return(&pokedex.SearchPokemonOutput{Results: []search.Result{{Ref: s.refs[0]}, {Ref: s.refs[1]}, {Ref: s.refs[2]}}}, nil)

	s.send(keyRunes("/"))
	s.send(keyRunes("c"))
	s.send(tea.KeyMsg{Type: tea.KeyEsc})
	s.False(s.model.searching)
	s.Len(s.model.results, 1)

	s.send(tea.KeyMsg{Type: tea.KeyEsc})
	s.Equal("", s.model.search.Value())
	s.Len(s.model.results, 3)
}

func (s *ModelTestSuite) TestOpenDetail() {
	s.openPikachu("<art>", nil)

	s.Equal(screenDetail, s.model.screen)
	s.Equal(pageInfo, s.model.page)
	s.Require().NotNil(s.model.detail)

	view := s.model.View()
	s.Contains(view, "<art>")
	s.Contains(view, "#025 Pikachu")
	s.Contains(view, "May paralyze on contact.")
}

func (s *ModelTestSuite) TestSpriteFailureShowsPlaceholder() {
	s.openPikachu("", errors.Unavailable("converter missing"))

	s.Equal(SpritePlaceholder, s.model.sprite)
	s.Contains(s.model.View(), SpritePlaceholder)
	s.NoError(s.model.err)
}

func (s *ModelTestSuite) TestDetailPages() {
	s.openPikachu("<art>", nil)

	power := 40
	s.mockService.EXPECT().
		GetMoves(gomock.Any(), &pokedex.GetMovesInput{IDOrName: "25"}).
		Return(&pokedex.GetMovesOutput{
			Generation: 9,
			Moves: []pokemon.MoveRecord{{
				Name:        "thunder-shock",
				DisplayName: "Thunder Shock",
				Method:      pokemon.LearnMethodLevelUp,
				Level:       1,
				Type:        "electric",
				Category:    "special",
				Power:       &power,
				PP:          30,
			}},
		}, nil)
	s.mockService.EXPECT().
		GetEvolutionChain(gomock.Any(), &pokedex.GetEvolutionChainInput{IDOrName: "25"}).
		Return(&pokedex.GetEvolutionChainOutput{
			ChainID: 10,
			Stages: []pokemon.EvolutionStage{
				{Depth: 0, Species: "pichu", DisplayName: "Pichu"},
				{Depth: 1, Species: "pikachu", DisplayName: "Pikachu", Trigger: "level-up"},
				{Depth: 2, Species: "raichu", DisplayName: "Raichu", Trigger: "use-item", Item: "thunder-stone"},
			},
		}, nil)

	s.send(tea.KeyMsg{Type: tea.KeyTab})
	s.Equal(pageMoves, s.model.page)
	s.Contains(s.model.View(), "Thunder Shock")
	s.Contains(s.model.View(), "Lv 1")

	s.send(tea.KeyMsg{Type: tea.KeyTab})
	s.Equal(pageEvolution, s.model.page)
	s.Contains(s.model.View(), "Raichu")
	s.Contains(s.model.View(), "Thunder Stone")

	// Wraps back to info
	s.mockService.EXPECT().
		GetPokemon(gomock.Any(), &pokedex.GetPokemonInput{IDOrName: "25"}).
		Return(&pokedex.GetPokemonOutput{Pokemon: pikachu()}, nil)
	s.mockRenderer.EXPECT().
		Render(gomock.Any(), gomock.Any(), 30).
		Return("<art>", nil)

	s.send(tea.KeyMsg{Type: tea.KeyTab})
	s.Equal(pageInfo, s.model.page)
}

func (s *ModelTestSuite) TestGenerationKeyReloadsDetail() {
	s.openPikachu("<art>", nil)

	gen4 := pikachu()
	gen4.Generation = 4
	s.mockService.EXPECT().
		SetGeneration(gomock.Any(), &pokedex.SetGenerationInput{Generation: 4}).
		Return(&pokedex.SetGenerationOutput{Generation: 4}, nil)
	s.mockService.EXPECT().
		GetPokemon(gomock.Any(), &pokedex.GetPokemonInput{IDOrName: "25"}).
		Return(&pokedex.GetPokemonOutput{Pokemon: gen4}, nil)
	s.mockRenderer.EXPECT().
		Render(gomock.Any(), gomock.Any(), 30).
		Return("<art>", nil)

	s.send(keyRunes("4"))

	s.Equal(4, s.model.detail.Generation)
	s.Contains(s.model.View(), "as of Gen IV")
}

func (s *ModelTestSuite) TestGenerationKeyOnList() {
	s.loadList()

	s.mockService.EXPECT().
		SetGeneration(gomock.Any(), &pokedex.SetGenerationInput{Generation: 2}).
		Return(&pokedex.SetGenerationOutput{Generation: 2}, nil)

	s.send(keyRunes("2"))
	s.Equal(screenList, s.model.screen)
	s.NoError(s.model.err)
}

func (s *ModelTestSuite) TestBackDiscardsPendingDetail() {
	s.loadList()

	s.mockService.EXPECT().
		GetPokemon(gomock.Any(), gomock.Any()).
		Return(&pokedex.GetPokemonOutput{Pokemon: pikachu()}, nil)
	s.mockRenderer.EXPECT().
		Render(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("<art>", nil)

	_, pending := s.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s.Equal(screenDetail, s.model.screen)

	s.send(tea.KeyMsg{Type: tea.KeyEsc})
	s.Equal(screenList, s.model.screen)

	for _, msg := range runCmd(pending) {
		s.send(msg)
	}
	s.Nil(s.model.detail)
}

func (s *ModelTestSuite) TestDetailErrorIsShown() {
	s.loadList()

	s.mockService.EXPECT().
		GetPokemon(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("no such pokemon"))

	s.send(tea.KeyMsg{Type: tea.KeyEnter})

	s.Nil(s.model.detail)
	s.Contains(s.model.View(), "no such pokemon")
}

func (s *ModelTestSuite) TestQuit() {
	s.loadList()

	_, cmd := s.model.Update(keyRunes("q"))
	s.Require().NotNil(cmd)
	s.IsType(tea.QuitMsg{}, cmd())

	_, cmd = s.model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	s.Require().NotNil(cmd)
	s.IsType(tea.QuitMsg{}, cmd())
}

func (s *ModelTestSuite) TestNoSpritesWithoutRenderer() {
	model, err := New(&Config{Service: s.mockService, Context: context.Background()})
	s.Require().NoError(err)

	s.Equal("", renderSprite(context.Background(), model.sprites, pikachu(), 30))
}
