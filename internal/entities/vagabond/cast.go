package vagabond

// CostBreakdown is the derived mana price of a spell configuration
type CostBreakdown struct {
	DamageCost           int `json:"damage_cost"`
	FxCost               int `json:"fx_cost"`
	DeliveryBaseCost     int `json:"delivery_base_cost"`
	DeliveryIncreaseCost int `json:"delivery_increase_cost"`
	TotalCost            int `json:"total_cost"`
}

// CastStage is a state of the cast commit operation
type CastStage string

// Cast stages
const (
	CastStageIdle        CastStage = "idle"
	CastStageValidating  CastStage = "validating"
	CastStageRollPending CastStage = "roll_pending"
	CastStageAutoSuccess CastStage = "auto_success"
	CastStageResolved    CastStage = "resolved"
	CastStageRejected    CastStage = "rejected"
)

// IsTerminal reports whether the stage ends the operation
func (s CastStage) IsTerminal() bool {
	return s == CastStageResolved || s == CastStageRejected
}

// RejectionReason explains why a cast did not resolve
type RejectionReason string

// Rejection reasons
const (
	RejectionNone                   RejectionReason = ""
	RejectionNoDeliverySelected     RejectionReason = "no_delivery_selected"
	RejectionInsufficientResource   RejectionReason = "insufficient_resource"
	RejectionExceedsCastingCeiling  RejectionReason = "exceeds_casting_ceiling"
	RejectionNotEligibleToCast      RejectionReason = "not_eligible_to_cast"
	RejectionAutoFailStatus         RejectionReason = "auto_fail_status"
	RejectionExternalServiceFailure RejectionReason = "external_service_failure"
)

// RollReference points at a roll recorded in the dice session store
type RollReference struct {
	RollID      string  `json:"roll_id"`
	Notation    string  `json:"notation"`
	Dice        []int32 `json:"dice"`
	Total       int32   `json:"total"`
	PrimaryFace int32   `json:"primary_face,omitempty"`
}

// CastResult is returned to the caller of a resolved cast
type CastResult struct {
	CastID       string         `json:"cast_id"`
	IsSuccess    bool           `json:"is_success"`
	IsCritical   bool           `json:"is_critical"`
	Roll         *RollReference `json:"roll,omitempty"`
	DamageRoll   *RollReference `json:"damage_roll,omitempty"`
	Difficulty   int            `json:"difficulty"`
	FavorHinder  FavorHinder    `json:"favor_hinder"`
	DeliveryText string         `json:"delivery_text"`
	Costs        CostBreakdown  `json:"costs"`
	Mana         ResourcePool   `json:"mana"`
	Targets      []Target       `json:"targets,omitempty"`
}
