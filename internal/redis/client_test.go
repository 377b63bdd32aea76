package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex-tui/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
}

func (s *ClientTestSuite) TearDownTest() {
	s.mr.Close()
}

func (s *ClientTestSuite) TestNewClientRequiresEndpoint() {
	client, err := redis.NewClient("", nil)
	s.Error(err)
	s.Nil(client)
}

func (s *ClientTestSuite) TestNewClientConnects() {
	client, err := redis.NewClient(s.mr.Addr(), &redis.Options{
		DB:          0,
		PoolSize:    2,
		DialTimeout: time.Second,
	})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	s.Require().NoError(client.Ping(ctx).Err())
	s.Require().NoError(client.Set(ctx, "pokeapi:ability:static", "{}", 0).Err())
	s.True(s.mr.Exists("pokeapi:ability:static"))
}

func (s *ClientTestSuite) TestUnreachableEndpointFailsOnUse() {
	stopped, err := miniredis.Run()
	s.Require().NoError(err)
	addr := stopped.Addr()
	stopped.Close()

	client, err := redis.NewClient(addr, &redis.Options{DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.Error(client.Ping(context.Background()).Err())
}
