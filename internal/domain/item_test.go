package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_Validate(t *testing.T) {
	valid := Item{
		Name:       "crystal amulet",
		Permanence: PermanencePersists,
		Targets:    TargetList{{Target: "Aura", Type: BoostBase, Amount: 2}},
	}
	assert.NoError(t, valid.Validate())

	t.Run("missing name", func(t *testing.T) {
		item := valid
		item.Name = ""
		assert.ErrorIs(t, item.Validate(), ErrItemNameMissing)
	})

	t.Run("no targets", func(t *testing.T) {
		item := valid
		item.Targets = nil
		assert.ErrorIs(t, item.Validate(), ErrNoTargets)
	})

	t.Run("too many targets", func(t *testing.T) {
		item := valid
		item.Targets = make(TargetList, MaxTargets+1)
		assert.ErrorIs(t, item.Validate(), ErrTooManyTargets)
	})

	t.Run("bad permanence", func(t *testing.T) {
		item := valid
		item.Permanence = "Eternal"
		assert.ErrorIs(t, item.Validate(), ErrBadPermanence)
	})
}

func TestItem_DedupKey(t *testing.T) {
	a := Item{
		Name: "ring",
		Targets: TargetList{
			{Target: "Strength", Type: BoostBonus, Amount: 5},
			{Target: "Climbing", Type: BoostRanks, Amount: 7},
		},
	}
	b := Item{
		Name: "ring",
		Targets: TargetList{
			{Target: "Climbing", Type: BoostRanks, Amount: 7},
			{Target: "Strength", Type: BoostBonus, Amount: 5},
		},
	}
	// Target order does not matter.
	assert.Equal(t, a.DedupKey(), b.DedupKey())

	c := b
	c.Targets = TargetList{
		{Target: "Climbing", Type: BoostRanks, Amount: 8},
		{Target: "Strength", Type: BoostBonus, Amount: 5},
	}
	assert.NotEqual(t, a.DedupKey(), c.DedupKey())

	d := a
	d.Name = "band"
	assert.NotEqual(t, a.DedupKey(), d.DedupKey())
}

func TestVocabulary(t *testing.T) {
	assert.True(t, IsStat("Strength"))
	assert.False(t, IsStat("Climbing"))
	assert.True(t, IsSkill("Climbing"))
	assert.True(t, IsSkill("Mental Lore - Telepathy"))
	assert.True(t, IsResource("Max Health"))
	assert.False(t, IsResource("Strength"))
	assert.True(t, IsValidPermanence(PermanenceCrumbly))
	assert.False(t, IsValidPermanence("Sturdy"))
}
