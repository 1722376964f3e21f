package vagabond

// CheckKind names what a plain d20 check is made against
type CheckKind string

// Check kinds
const (
	CheckKindSkill CheckKind = "skill"
	CheckKindSave  CheckKind = "save"
)

// CheckResult is the outcome of a skill or save check
type CheckResult struct {
	Kind        CheckKind      `json:"kind"`
	Key         string         `json:"key"`
	Roll        *RollReference `json:"roll"`
	Difficulty  int            `json:"difficulty"`
	IsSuccess   bool           `json:"is_success"`
	FavorHinder FavorHinder    `json:"favor_hinder"`
}
