package pokeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-tui/internal/errors"
)

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	mux      *http.ServeMux
	metrics  *Metrics
	client   Client
	ctx      context.Context
	requests atomic.Int32
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.requests.Store(0)
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		s.mux.ServeHTTP(w, r)
	}))
	s.metrics = NewMetrics(prometheus.NewRegistry())
	s.ctx = context.Background()

	client, err := New(&Config{
		BaseURL:           s.server.URL + "/api/v2",
		RequestsPerSecond: 1000,
		Burst:             100,
		Metrics:           s.metrics,
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) respond(path string, status int, body string) {
	s.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func (s *ClientTestSuite) TestGetPokemon() {
	var userAgent string
	s.mux.HandleFunc("/api/v2/pokemon/clefairy/", func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(clefairyJSON))
	})

	p, err := s.client.GetPokemon(s.ctx, "  Clefairy ")
	s.Require().NoError(err)
	s.Equal(35, p.ID)
	s.Equal("pokedex-tui", userAgent)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.requests.WithLabelValues(ResourcePokemon, "OK")))
}

func (s *ClientTestSuite) TestUpstreamStatusMapping() {
	testCases := []struct {
		name   string
		status int
		code   errors.Code
	}{
		{"not found", http.StatusNotFound, errors.CodeNotFound},
		{"rate limited", http.StatusTooManyRequests, errors.CodeResourceExhausted},
		{"server error", http.StatusInternalServerError, errors.CodeUnavailable},
		{"bad gateway", http.StatusBadGateway, errors.CodeUnavailable},
		{"gateway timeout", http.StatusGatewayTimeout, errors.CodeDeadlineExceeded},
	}

	for i, tc := range testCases {
		s.Run(tc.name, func() {
			name := "move-" + string(rune('a'+i))
			s.respond("/api/v2/move/"+name+"/", tc.status, `{}`)

			_, err := s.client.GetMove(s.ctx, name)
			s.Require().Error(err)
			s.Equal(tc.code, errors.GetCode(err))
			s.Equal(tc.status, errors.GetMeta(err)[errors.MetaStatus])
		})
	}
}

func (s *ClientTestSuite) TestUnreachableUpstream() {
	s.server.Close()

	_, err := s.client.GetAbility(s.ctx, "levitate")
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.client.GetSpecies(ctx, "pikachu")
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
	s.Zero(s.requests.Load())
}

func (s *ClientTestSuite) TestMalformedBody() {
	s.respond("/api/v2/pokemon/1/", http.StatusOK, `{"id": 1, "name": "bulbasaur", "types": []}`)

	_, err := s.client.GetPokemon(s.ctx, "1")
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
}

func (s *ClientTestSuite) TestGetEvolutionChainRejectsInvalidID() {
	_, err := s.client.GetEvolutionChain(s.ctx, 0)
	s.True(errors.IsInvalidArgument(err))
	s.Zero(s.requests.Load())
}

func (s *ClientTestSuite) TestEmptyKey() {
	_, err := s.client.GetMove(s.ctx, "   ")
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestListPokemon() {
	var limit string
	s.mux.HandleFunc("/api/v2/pokemon-species/", func(w http.ResponseWriter, r *http.Request) {
		limit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`{"count": 2, "results": [
			{"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon-species/2/"},
			{"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon-species/1/"}
		]}`))
	})

	refs, err := s.client.ListPokemon(s.ctx)
	s.Require().NoError(err)
	s.Equal("100000", limit)
	s.Equal([]pokemon.Ref{{ID: 1, Name: "bulbasaur"}, {ID: 2, Name: "ivysaur"}}, refs)
}

func (s *ClientTestSuite) TestConfigValidate() {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
		check   func(cfg Config)
	}{
		{
			name: "defaults",
			cfg:  Config{},
			check: func(cfg Config) {
				s.Equal(DefaultBaseURL, cfg.BaseURL)
				s.Equal(30*time.Second, cfg.HTTPTimeout)
				s.Equal(float64(20), cfg.RequestsPerSecond)
				s.Equal(10, cfg.Burst)
			},
		},
		{
			name: "adds trailing slash",
			cfg:  Config{BaseURL: "http://localhost:8000/api/v2"},
			check: func(cfg Config) {
				s.Equal("http://localhost:8000/api/v2/", cfg.BaseURL)
			},
		},
		{
			name:    "relative url",
			cfg:     Config{BaseURL: "/api/v2/"},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			cfg:     Config{HTTPTimeout: -time.Second},
			wantErr: true,
		},
		{
			name:    "negative rate",
			cfg:     Config{RequestsPerSecond: -1},
			wantErr: true,
		},
		{
			name:    "negative burst",
			cfg:     Config{Burst: -1},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := tc.cfg
			err := cfg.Validate()
			if tc.wantErr {
				s.Require().Error(err)
				s.True(errors.IsInvalidArgument(err))
				return
			}
			s.Require().NoError(err)
			tc.check(cfg)
		})
	}
}

func (s *ClientTestSuite) TestNewRequiresConfig() {
	_, err := New(nil)
	s.True(errors.IsInvalidArgument(err))
}
