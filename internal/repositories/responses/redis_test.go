package responses_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex-tui/internal/errors"
	"github.com/KirkDiggler/pokedex-tui/internal/repositories/responses"
	"github.com/KirkDiggler/pokedex-tui/internal/testutils"
)

type RedisResponsesTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	repo    responses.Repository
	cleanup func()
	ctx     context.Context
}

func TestRedisResponsesSuite(t *testing.T) {
	suite.Run(t, new(RedisResponsesTestSuite))
}

func (s *RedisResponsesTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, cleanup := testutils.CreateTestRedisClientWithContext(s.T(), func(mr *miniredis.Miniredis) {
		s.mr = mr
	})
	s.cleanup = cleanup

	repo, err := responses.NewRedis(&responses.RedisConfig{
		Client: client,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisResponsesTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisResponsesTestSuite) TestPutThenGet() {
	body := []byte(`{"Name":"thunderbolt"}`)

	_, err := s.repo.Put(s.ctx, responses.PutInput{Resource: "move", Key: "thunderbolt", Body: body})
	s.Require().NoError(err)

	s.True(s.mr.Exists("pokeapi:v1:move:thunderbolt"))

	out, err := s.repo.Get(s.ctx, responses.GetInput{Resource: "move", Key: "thunderbolt"})
	s.Require().NoError(err)
	s.JSONEq(string(body), string(out.Body))
}

func (s *RedisResponsesTestSuite) TestGetMissingIsNotFound() {
	_, err := s.repo.Get(s.ctx, responses.GetInput{Resource: "move", Key: "splash"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisResponsesTestSuite) TestUnversionedDocumentsAreIgnored() {
	s.Require().NoError(s.mr.Set("pokeapi:move:thunderbolt", `{"Name":"thunderbolt"}`))

	_, err := s.repo.Get(s.ctx, responses.GetInput{Resource: "move", Key: "thunderbolt"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisResponsesTestSuite) TestDocumentsExpire() {
	_, err := s.repo.Put(s.ctx, responses.PutInput{Resource: "ability", Key: "levitate", Body: []byte(`{}`)})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	_, err = s.repo.Get(s.ctx, responses.GetInput{Resource: "ability", Key: "levitate"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisResponsesTestSuite) TestPutReplaces() {
	input := responses.PutInput{Resource: "pokemon", Key: "25", Body: []byte(`{"v":1}`)}
	_, err := s.repo.Put(s.ctx, input)
	s.Require().NoError(err)

	input.Body = []byte(`{"v":2}`)
	_, err = s.repo.Put(s.ctx, input)
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, responses.GetInput{Resource: "pokemon", Key: "25"})
	s.Require().NoError(err)
	s.JSONEq(`{"v":2}`, string(out.Body))
}

func (s *RedisResponsesTestSuite) TestInvalidInput() {
	testCases := []struct {
		name string
		call func() error
	}{
		{"get without resource", func() error {
			_, err := s.repo.Get(s.ctx, responses.GetInput{Key: "x"})
			return err
		}},
		{"get without key", func() error {
			_, err := s.repo.Get(s.ctx, responses.GetInput{Resource: "move"})
			return err
		}},
		{"put without body", func() error {
			_, err := s.repo.Put(s.ctx, responses.PutInput{Resource: "move", Key: "x"})
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.True(errors.IsInvalidArgument(tc.call()))
		})
	}
}

func (s *RedisResponsesTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *responses.RedisConfig
		errMsg string
	}{
		{"nil config", nil, "config cannot be nil"},
		{"nil client", &responses.RedisConfig{}, "client cannot be nil"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := responses.NewRedis(tc.config)
			s.Require().Error(err)
			s.Nil(repo)
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}
