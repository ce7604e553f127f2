package session

const (
	// DefaultKillsPerCrystal is how many kills earn one crystal drop
	DefaultKillsPerCrystal = 10
	// DefaultSpecialAttackCost is how many crystals the special attack consumes
	DefaultSpecialAttackCost = 10
)

// Economy tracks kills and crystals and gates the special attack
type Economy struct {
	killsPerCrystal int
	attackCost      int

	kills    int
	crystals int

	// OnCrystalEarned is called on every kill that earns a crystal drop
	OnCrystalEarned func(kills int)
	// OnSpecialAttack is called when the special attack is paid for
	OnSpecialAttack func()
}

// NewEconomy creates an economy. Non-positive values fall back to the defaults.
func NewEconomy(killsPerCrystal, attackCost int) *Economy {
	if killsPerCrystal <= 0 {
		killsPerCrystal = DefaultKillsPerCrystal
	}
	if attackCost <= 0 {
		attackCost = DefaultSpecialAttackCost
	}
	return &Economy{
		killsPerCrystal: killsPerCrystal,
		attackCost:      attackCost,
	}
}

// RegisterKill counts a kill and reports whether it earned a crystal
func (e *Economy) RegisterKill() bool {
	e.kills++
	if e.kills%e.killsPerCrystal != 0 {
		return false
	}
	if e.OnCrystalEarned != nil {
		e.OnCrystalEarned(e.kills)
	}
	return true
}

// CollectCrystal adds one crystal to the purse
func (e *Economy) CollectCrystal() {
	e.crystals++
}

// TrySpecialAttack pays for the special attack if enough crystals are held.
// false means the ability is not ready; nothing changes.
func (e *Economy) TrySpecialAttack() bool {
	if e.crystals < e.attackCost {
		return false
	}
	e.crystals -= e.attackCost
	if e.OnSpecialAttack != nil {
		e.OnSpecialAttack()
	}
	return true
}

// CanSpecialAttack reports whether TrySpecialAttack would succeed
func (e *Economy) CanSpecialAttack() bool {
	return e.crystals >= e.attackCost
}

// SetCrystals overrides the crystal count
func (e *Economy) SetCrystals(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	e.crystals = n
	return nil
}

// Kills returns the total kill count
func (e *Economy) Kills() int {
	return e.kills
}

// Crystals returns the crystals currently held
func (e *Economy) Crystals() int {
	return e.crystals
}
