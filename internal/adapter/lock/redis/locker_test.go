package redislock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"unbounded/internal/app/ports"
)

type fixedTokens string

func (f fixedTokens) NewID() string { return string(f) }

type LockerTestSuite struct {
	suite.Suite
	client *redis.Client
	mock   redismock.ClientMock
	locker Locker
}

func (s *LockerTestSuite) SetupTest() {
	s.client, s.mock = redismock.NewClientMock()
	s.locker = Locker{Client: s.client, Tokens: fixedTokens("tok-1")}
}

func (s *LockerTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestLockerTestSuite(t *testing.T) {
	suite.Run(t, new(LockerTestSuite))
}

func (s *LockerTestSuite) TestAcquireAndRelease() {
	ctx := context.Background()
	key := DefaultPrefix + "c1"

	s.mock.ExpectSetNX(key, "tok-1", 30*time.Second).SetVal(true)
	release, err := s.locker.Acquire(ctx, "c1", 30*time.Second)
	s.Require().NoError(err)

	s.mock.ExpectEvalSha(releaseScript.Hash(), []string{key}, "tok-1").SetVal(int64(1))
	s.NoError(release(ctx))
}

func (s *LockerTestSuite) TestAcquireHeldByOther() {
	s.mock.ExpectSetNX(DefaultPrefix+"c1", "tok-1", time.Second).SetVal(false)

	_, err := s.locker.Acquire(context.Background(), "c1", time.Second)
	s.ErrorIs(err, ports.ErrLocked)
}

func (s *LockerTestSuite) TestAcquireRedisError() {
	s.mock.ExpectSetNX(DefaultPrefix+"c1", "tok-1", time.Second).SetErr(errors.New("connection refused"))

	_, err := s.locker.Acquire(context.Background(), "c1", time.Second)
	s.Error(err)
	s.NotErrorIs(err, ports.ErrLocked)
}

func (s *LockerTestSuite) TestReleaseAfterExpiryReportsLoss() {
	ctx := context.Background()
	s.locker.Prefix = "test:"

	s.mock.ExpectSetNX("test:c1", "tok-1", time.Second).SetVal(true)
	release, err := s.locker.Acquire(ctx, "c1", time.Second)
	s.Require().NoError(err)

	s.mock.ExpectEvalSha(releaseScript.Hash(), []string{"test:c1"}, "tok-1").SetVal(int64(0))
	s.ErrorIs(release(ctx), ErrLockLost)
}
