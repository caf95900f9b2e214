package rosters

import (
	"context"
	"testing"

	"github.com/wastelandforge/warband/internal/domain/roster"
	apperrors "github.com/wastelandforge/warband/internal/errors"
	"github.com/stretchr/testify/suite"
)

type InMemoryRepoTestSuite struct {
	suite.Suite
	repo Repository
	ctx  context.Context
}

func (s *InMemoryRepoTestSuite) SetupTest() {
	s.repo = NewInMemoryRepository()
	s.ctx = context.Background()
}

func TestInMemoryRepoTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepoTestSuite))
}

func (s *InMemoryRepoTestSuite) createTestRoster(id string) *roster.Roster {
	rst := roster.New(id)
	rst.Name = "Test Warband"
	rst.Faction = "Raiders"
	rst.PointsLimit = 500
	rst.Units = []*roster.Unit{
		{UID: "u1", DefID: "raider-scavver", Cards: []roster.CardSlot{
			{ItemID: "pipe-pistol", Locked: true},
		}},
	}
	return rst
}

func (s *InMemoryRepoTestSuite) TestCreateAndGet() {
	rst := s.createTestRoster("r1")

	s.Require().NoError(s.repo.Create(s.ctx, rst))

	loaded, err := s.repo.Get(s.ctx, "r1")
	s.Require().NoError(err)
	s.Equal(rst.Name, loaded.Name)
	s.Require().Len(loaded.Units, 1)
	s.Equal("u1", loaded.Units[0].UID)
}

func (s *InMemoryRepoTestSuite) TestCreate_Duplicate() {
	rst := s.createTestRoster("r1")

	s.Require().NoError(s.repo.Create(s.ctx, rst))
	err := s.repo.Create(s.ctx, rst)
	s.True(apperrors.IsAlreadyExists(err))
}

func (s *InMemoryRepoTestSuite) TestCreate_Validation() {
	s.Error(s.repo.Create(s.ctx, nil))
	s.Error(s.repo.Create(s.ctx, roster.New("")))
}

func (s *InMemoryRepoTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, "missing")
	s.True(apperrors.IsNotFound(err))
}

func (s *InMemoryRepoTestSuite) TestGet_ReturnsCopy() {
	s.Require().NoError(s.repo.Create(s.ctx, s.createTestRoster("r1")))

	loaded, err := s.repo.Get(s.ctx, "r1")
	s.Require().NoError(err)
	loaded.Units[0].Cards = nil

	reloaded, err := s.repo.Get(s.ctx, "r1")
	s.Require().NoError(err)
	s.Len(reloaded.Units[0].Cards, 1)
}

func (s *InMemoryRepoTestSuite) TestUpdate() {
	rst := s.createTestRoster("r1")
	s.Require().NoError(s.repo.Create(s.ctx, rst))

	rst.Name = "Renamed"
	s.Require().NoError(s.repo.Update(s.ctx, rst))

	loaded, err := s.repo.Get(s.ctx, "r1")
	s.Require().NoError(err)
	s.Equal("Renamed", loaded.Name)
}

func (s *InMemoryRepoTestSuite) TestUpdate_NotFound() {
	err := s.repo.Update(s.ctx, s.createTestRoster("missing"))
	s.True(apperrors.IsNotFound(err))
}

func (s *InMemoryRepoTestSuite) TestDelete() {
	s.Require().NoError(s.repo.Create(s.ctx, s.createTestRoster("r1")))

	s.Require().NoError(s.repo.Delete(s.ctx, "r1"))

	_, err := s.repo.Get(s.ctx, "r1")
	s.True(apperrors.IsNotFound(err))

	// Deleting an absent roster is a no-op.
	s.NoError(s.repo.Delete(s.ctx, "r1"))
}

func (s *InMemoryRepoTestSuite) TestList() {
	s.Require().NoError(s.repo.Create(s.ctx, s.createTestRoster("r1")))
	s.Require().NoError(s.repo.Create(s.ctx, s.createTestRoster("r2")))

	rosters, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Len(rosters, 2)
}
