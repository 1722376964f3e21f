package vagabond

// FavorHinder is the ternary check modifier
type FavorHinder string

// Favor/hinder values
const (
	FavorHinderNone   FavorHinder = "none"
	FavorHinderFavor  FavorHinder = "favor"
	FavorHinderHinder FavorHinder = "hinder"
)

// IsValid reports whether f is one of the known values
func (f FavorHinder) IsValid() bool {
	switch f {
	case FavorHinderNone, FavorHinderFavor, FavorHinderHinder:
		return true
	}
	return false
}

// CalculateFavorHinder combines the actor's persistent state with the intent
// signalled by input modifiers: shift alone favors, ctrl alone hinders.
// Opposite state and intent cancel out to none.
func CalculateFavorHinder(system FavorHinder, shift, ctrl bool) FavorHinder {
	if system == "" {
		system = FavorHinderNone
	}

	intent := FavorHinderNone
	switch {
	case shift && !ctrl:
		intent = FavorHinderFavor
	case ctrl && !shift:
		intent = FavorHinderHinder
	}

	if system == FavorHinderNone {
		return intent
	}
	if intent == FavorHinderNone {
		return system
	}
	if system == intent {
		return system
	}
	return FavorHinderNone
}
