package rules_test

import (
	"testing"

	"github.com/wastelandforge/warband/internal/domain/catalog"
	"github.com/wastelandforge/warband/internal/domain/roster"
	apperrors "github.com/wastelandforge/warband/internal/errors"
	"github.com/wastelandforge/warband/internal/rules"
	"github.com/wastelandforge/warband/internal/testutils"
	"github.com/stretchr/testify/suite"
)

type BuilderTestSuite struct {
	suite.Suite
	cat     *catalog.Catalog
	builder *rules.Builder
}

func (s *BuilderTestSuite) SetupTest() {
	s.cat = testutils.CreateTestCatalog()
	s.builder = rules.NewBuilder(s.cat, testutils.NewSequentialGenerator("gen"))
}

func TestBuilderTestSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}

func (s *BuilderTestSuite) TestPickUnit() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)

	s.Len(rst.Units, 1)
	s.Equal("raider-scavver", unit.DefID)
	s.Equal("raider-scavver-gen0", unit.UID)
	s.Equal("Raiders", unit.Faction)
}

func (s *BuilderTestSuite) TestPickUnit_NotFound() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	_, err := s.builder.PickUnit(rst, "no-such-unit")
	s.True(apperrors.IsNotFound(err))
	s.Empty(rst.Units)
}

func (s *BuilderTestSuite) TestPickUnit_DefaultEquipmentLocked() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-boss")
	s.Require().NoError(err)

	s.Require().Len(unit.Cards, 1)
	s.Equal("pipe-pistol", unit.Cards[0].ItemID)
	s.True(unit.Cards[0].Locked)
}

func (s *BuilderTestSuite) TestPickUnit_UniqueOncePerRoster() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	_, err := s.builder.PickUnit(rst, "raider-boss")
	s.Require().NoError(err)

	_, err = s.builder.PickUnit(rst, "raider-boss")
	s.True(apperrors.IsAlreadyExists(err))
	s.Len(rst.Units, 1)
}

func (s *BuilderTestSuite) TestPickUnit_ModelsLimit() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 1)

	_, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)

	_, err = s.builder.PickUnit(rst, "wasteland-dog")
	s.True(apperrors.IsLimitExceeded(err))
	s.Len(rst.Units, 1)
}

func (s *BuilderTestSuite) TestPickUnit_FreezesSoleFaction() {
	rst := testutils.CreateTestRoster("r1", "", 0, 0)

	brute, err := s.builder.PickUnit(rst, "super-mutant-brute")
	s.Require().NoError(err)
	s.Equal("Super Mutants", brute.Faction)

	// Multi-faction unit on a faction-less roster stays unresolved.
	dog, err := s.builder.PickUnit(rst, "wasteland-dog")
	s.Require().NoError(err)
	s.Empty(dog.Faction)
}

func (s *BuilderTestSuite) TestDuplicateUnit() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "pipe-pistol"))
	s.Require().NoError(s.builder.ApplyMod(rst, unit.UID, 0, "pistol-scope"))

	copied, err := s.builder.DuplicateUnit(rst, unit.UID)
	s.Require().NoError(err)

	s.Len(rst.Units, 2)
	s.NotEqual(unit.UID, copied.UID)
	s.Equal(unit.DefID, copied.DefID)
	s.Equal(unit.Cards, copied.Cards)
}

func (s *BuilderTestSuite) TestDuplicateUnit_UniqueRejected() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	boss, err := s.builder.PickUnit(rst, "raider-boss")
	s.Require().NoError(err)

	_, err = s.builder.DuplicateUnit(rst, boss.UID)
	s.True(apperrors.IsAlreadyExists(err))
}

func (s *BuilderTestSuite) TestRemoveUnit() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	boss, err := s.builder.PickUnit(rst, "raider-boss")
	s.Require().NoError(err)
	s.Require().NoError(s.builder.AddItem(rst, boss.UID, "war-cry"))
	s.True(rst.LeaderTaken)

	s.builder.RemoveUnit(rst, boss.UID)

	s.Empty(rst.Units)
	s.False(rst.LeaderTaken)

	// Removing an absent unit is a no-op.
	s.builder.RemoveUnit(rst, "ghost")
}

func (s *BuilderTestSuite) TestAddItem() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)

	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "board"))

	s.Require().Len(unit.Cards, 1)
	s.Equal("board", unit.Cards[0].ItemID)
	s.False(unit.Cards[0].Locked)
}

func (s *BuilderTestSuite) TestAddItem_Ineligible() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)

	err = s.builder.AddItem(rst, unit.UID, "missile-launcher")
	s.True(apperrors.IsIneligible(err))
	s.Empty(unit.Cards)
}

func (s *BuilderTestSuite) TestAddItem_RejectsMods() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)

	err = s.builder.AddItem(rst, unit.UID, "pistol-scope")
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *BuilderTestSuite) TestAddItem_SetsLeaderFlag() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	boss, err := s.builder.PickUnit(rst, "raider-boss")
	s.Require().NoError(err)

	s.Require().NoError(s.builder.AddItem(rst, boss.UID, "war-cry"))
	s.True(rst.LeaderTaken)
}

func (s *BuilderTestSuite) TestRemoveItem() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "board"))

	s.Require().NoError(s.builder.RemoveItem(rst, unit.UID, 0))
	s.Empty(unit.Cards)
}

func (s *BuilderTestSuite) TestRemoveItem_LockedIsNoOp() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	boss, err := s.builder.PickUnit(rst, "raider-boss")
	s.Require().NoError(err)
	s.Require().Len(boss.Cards, 1)

	s.Require().NoError(s.builder.RemoveItem(rst, boss.UID, 0))
	s.Len(boss.Cards, 1)
}

func (s *BuilderTestSuite) TestRemoveItem_OutOfRange() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)

	err = s.builder.RemoveItem(rst, unit.UID, 5)
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *BuilderTestSuite) TestApplyMod() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "pipe-pistol"))

	s.Require().NoError(s.builder.ApplyMod(rst, unit.UID, 0, "pistol-scope"))
	s.Equal("pistol-scope", unit.Cards[0].ModID)
}

func (s *BuilderTestSuite) TestApplyMod_WrongSlotType() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "board"))

	err = s.builder.ApplyMod(rst, unit.UID, 0, "pistol-scope")
	s.True(apperrors.IsIneligible(err))
	s.Empty(unit.Cards[0].ModID)
}

func (s *BuilderTestSuite) TestApplyMod_UniqueReassignmentAllowed() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "pipe-pistol"))
	s.Require().NoError(s.builder.ApplyMod(rst, unit.UID, 0, "prototype-cell"))

	// Re-applying the unique mod to its own slot is not a second copy.
	s.Require().NoError(s.builder.ApplyMod(rst, unit.UID, 0, "prototype-cell"))

	// A second slot cannot take another copy.
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "alien-blaster"))
	err = s.builder.ApplyMod(rst, unit.UID, 1, "prototype-cell")
	s.True(apperrors.IsIneligible(err))
}

func (s *BuilderTestSuite) TestApplyModFromCatalog_SingleTarget() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "board"))
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "pipe-pistol"))

	slot, err := s.builder.ApplyModFromCatalog(rst, unit.UID, "pistol-scope")
	s.Require().NoError(err)
	s.Equal(1, slot)
	s.Equal("pistol-scope", unit.Cards[1].ModID)
}

func (s *BuilderTestSuite) TestApplyModFromCatalog_PrefersEmptySlot() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "pipe-pistol"))
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "alien-blaster"))
	s.Require().NoError(s.builder.ApplyMod(rst, unit.UID, 0, "pistol-scope"))

	// Two pistol slots, one already modded: the empty one wins.
	slot, err := s.builder.ApplyModFromCatalog(rst, unit.UID, "pistol-scope")
	s.Require().NoError(err)
	s.Equal(1, slot)
}

func (s *BuilderTestSuite) TestApplyModFromCatalog_Ambiguous() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "pipe-pistol"))
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "alien-blaster"))

	_, err = s.builder.ApplyModFromCatalog(rst, unit.UID, "pistol-scope")
	s.True(apperrors.IsAmbiguousTarget(err))

	meta := apperrors.GetMeta(err)
	s.Require().NotNil(meta)
	s.ElementsMatch([]string{"Pipe Pistol", "Alien Blaster"}, meta["candidates"])
}

func (s *BuilderTestSuite) TestApplyModFromCatalog_NoTargets() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)

	_, err = s.builder.ApplyModFromCatalog(rst, unit.UID, "pistol-scope")
	s.True(apperrors.IsIneligible(err))
}

func (s *BuilderTestSuite) TestRemoveMod() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "pipe-pistol"))
	s.Require().NoError(s.builder.ApplyMod(rst, unit.UID, 0, "pistol-scope"))

	s.Require().NoError(s.builder.RemoveMod(rst, unit.UID, 0))
	s.Empty(unit.Cards[0].ModID)

	// Removing from an unmodded slot is a no-op.
	s.Require().NoError(s.builder.RemoveMod(rst, unit.UID, 0))
}

func (s *BuilderTestSuite) TestReorderCard() {
	rst := testutils.CreateTestRoster("r1", "Raiders", 0, 0)

	unit, err := s.builder.PickUnit(rst, "raider-scavver")
	s.Require().NoError(err)
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "board"))
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "pipe-pistol"))
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "buffout"))

	slotIDs := func() []string {
		var ids []string
		for _, slot := range unit.Cards {
			ids = append(ids, slot.ItemID)
		}
		return ids
	}

	// Move first to last.
	s.Require().NoError(s.builder.ReorderCard(rst, unit.UID, 0, nil))
	s.Equal([]string{"pipe-pistol", "buffout", "board"}, slotIDs())

	// Move last to front.
	to := 0
	s.Require().NoError(s.builder.ReorderCard(rst, unit.UID, 2, &to))
	s.Equal([]string{"board", "pipe-pistol", "buffout"}, slotIDs())

	// A forward move onto the last index appends to the end: the target is
	// compared against the list length after removal.
	to = 2
	s.Require().NoError(s.builder.ReorderCard(rst, unit.UID, 0, &to))
	s.Equal([]string{"pipe-pistol", "buffout", "board"}, slotIDs())

	// An overflowing target also appends.
	to = 9
	s.Require().NoError(s.builder.ReorderCard(rst, unit.UID, 0, &to))
	s.Equal([]string{"buffout", "board", "pipe-pistol"}, slotIDs())

	// An interior forward move lands one before the raw target, compensating
	// for the removal shift.
	s.Require().NoError(s.builder.AddItem(rst, unit.UID, "scrap-junk"))
	to = 2
	s.Require().NoError(s.builder.ReorderCard(rst, unit.UID, 0, &to))
	s.Equal([]string{"board", "buffout", "pipe-pistol", "scrap-junk"}, slotIDs())

	// Out-of-range source is a no-op.
	s.Require().NoError(s.builder.ReorderCard(rst, unit.UID, 9, nil))
	s.Equal([]string{"board", "buffout", "pipe-pistol", "scrap-junk"}, slotIDs())
}

func (s *BuilderTestSuite) TestRestore() {
	snap := &roster.Snapshot{
		Name:    "Restored",
		Faction: "Raiders",
		Units: []roster.UnitSnapshot{
			{ID: "raider-scavver", Cards: []roster.CardSnapshot{{ItemID: "board"}}},
		},
	}

	rst := s.builder.Restore(snap)

	s.Equal("Restored", rst.Name)
	s.Require().Len(rst.Units, 1)
	s.Equal("raider-scavver-gen0", rst.Units[0].UID)
}
