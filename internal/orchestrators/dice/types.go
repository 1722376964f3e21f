package dice

import (
	"time"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	dicesession "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/dice_session"
)

// RollDiceInput defines the request for rolling dice
type RollDiceInput struct {
	EntityID    string
	Context     string
	Notation    string
	Description string
	TTL         time.Duration
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// RollCheckInput defines a d20 check
type RollCheckInput struct {
	EntityID    string
	Context     string
	FavorHinder vagabond.FavorHinder
	// Bonus is a flat modifier added to the total
	Bonus       int
	Description string
}

// RollCheckOutput defines the result of a d20 check
type RollCheckOutput struct {
	Roll *dicesession.DiceRoll
	// Total is the d20 plus or minus the favor/hinder d6 plus Bonus
	Total int
	// PrimaryFace is the natural d20
	PrimaryFace int
}

// RollDamageInput defines a damage roll
type RollDamageInput struct {
	EntityID  string
	Context   string
	DiceCount int
	// DieSize defaults to DefaultDamageDie
	DieSize    int
	IsCritical bool
	// AttributeValue is added to the total on a critical
	AttributeValue int
	Description    string
}

// RollDamageOutput defines the result of a damage roll
type RollDamageOutput struct {
	Roll  *dicesession.DiceRoll
	Total int
}

// GetRollSessionInput defines the request for getting a roll session
type GetRollSessionInput struct {
	EntityID string
	Context  string
}

// GetRollSessionOutput defines the response for getting a roll session
type GetRollSessionOutput struct {
	Session *dicesession.DiceSession
}

// ClearRollSessionInput defines the request for clearing a roll session
type ClearRollSessionInput struct {
	EntityID string
	Context  string
}

// ClearRollSessionOutput defines the response for clearing a roll session
type ClearRollSessionOutput struct {
	RollsDeleted int32
}
