package domain

// Enhancive target vocabulary for GemStone IV. Stats, skills and resources are
// three disjoint name sets; anything outside them is treated as a skill-like
// target during aggregation rather than rejected.

type BoostType string

const (
	BoostBase  BoostType = "Base"
	BoostBonus BoostType = "Bonus"
	BoostRanks BoostType = "Ranks"
	BoostRegen BoostType = "Regen"
	BoostMax   BoostType = "Max"
)

var BoostTypes = []BoostType{BoostBase, BoostBonus, BoostRanks, BoostRegen, BoostMax}

type Permanence string

const (
	PermanencePersists Permanence = "Persists"
	PermanenceCrumbly  Permanence = "Crumbly"
)

var PermanenceTypes = []Permanence{PermanencePersists, PermanenceCrumbly}

var Stats = []string{
	"Strength", "Constitution", "Dexterity", "Agility", "Discipline",
	"Aura", "Logic", "Intuition", "Wisdom", "Influence",
}

var Resources = []string{
	"Max Health", "Max Mana", "Max Spirit", "Max Stamina",
	"Health Recovery", "Mana Recovery", "Spirit Recovery", "Stamina Recovery",
}

var SkillCategories = map[string][]string{
	"Armor & Weapons": {"Armor Use", "Shield Use"},
	"Combat": {
		"Edged Weapons", "Blunt Weapons", "Two-Handed Weapons", "Ranged Weapons",
		"Thrown Weapons", "Polearm Weapons", "Brawling", "Ambush",
		"Two Weapon Combat", "Combat Maneuvers", "Multi Opponent Combat",
		"Physical Fitness", "Dodging",
	},
	"General": {
		"Survival", "Disarming Traps", "Picking Locks", "Stalking and Hiding",
		"Perception", "Climbing", "Swimming", "First Aid", "Trading", "Pickpocketing",
	},
	"Magic": {
		"Arcane Symbols", "Magic Item Use", "Spell Aiming", "Harness Power",
		"Elemental Mana Control", "Mental Mana Control", "Spirit Mana Control",
		"Spell Research",
	},
	"Elemental Lore": {
		"Elemental Lore - Air", "Elemental Lore - Earth",
		"Elemental Lore - Fire", "Elemental Lore - Water",
	},
	"Spiritual Lore": {
		"Spiritual Lore - Blessings", "Spiritual Lore - Religion",
		"Spiritual Lore - Summoning",
	},
	"Sorcerous Lore": {"Sorcerous Lore - Demonology", "Sorcerous Lore - Necromancy"},
	"Mental Lore": {
		"Mental Lore - Divination", "Mental Lore - Manipulation",
		"Mental Lore - Telepathy", "Mental Lore - Transference",
		"Mental Lore - Transformation",
	},
}

var (
	statSet     = make(map[string]struct{}, len(Stats))
	resourceSet = make(map[string]struct{}, len(Resources))
	skillSet    = make(map[string]struct{})
)

func init() {
	for _, s := range Stats {
		statSet[s] = struct{}{}
	}
	for _, r := range Resources {
		resourceSet[r] = struct{}{}
	}
	for _, group := range SkillCategories {
		for _, s := range group {
			skillSet[s] = struct{}{}
		}
	}
}

func IsStat(target string) bool {
	_, ok := statSet[target]
	return ok
}

func IsResource(target string) bool {
	_, ok := resourceSet[target]
	return ok
}

func IsSkill(target string) bool {
	_, ok := skillSet[target]
	return ok
}

func IsValidPermanence(p Permanence) bool {
	for _, known := range PermanenceTypes {
		if p == known {
			return true
		}
	}
	return false
}
