package v1alpha1

import (
	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/orchestrators/spell"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/ruleset"
)

// GetSpellStateRequest reads an actor's spell configuration
type GetSpellStateRequest struct {
	ActorID string `json:"actor_id"`
	SpellID string `json:"spell_id"`
}

// GetSpellStateResponse contains the configuration and the spell it belongs to
type GetSpellStateResponse struct {
	Spell     *vagabond.SpellDefinition `json:"spell"`
	State     *vagabond.SpellState      `json:"state"`
	IsDefault bool                      `json:"is_default"`
}

// UpdateSpellStateRequest applies one configuration transition
type UpdateSpellStateRequest struct {
	ActorID      string `json:"actor_id"`
	SpellID      string `json:"spell_id"`
	Action       string `json:"action"`
	DeliveryType string `json:"delivery_type,omitempty"`
}

// UpdateSpellStateResponse contains the new configuration and its price
type UpdateSpellStateResponse struct {
	State   *vagabond.SpellState `json:"state"`
	Preview *Preview             `json:"preview"`
}

// PreviewCastRequest prices the stored configuration
type PreviewCastRequest struct {
	ActorID string `json:"actor_id"`
	SpellID string `json:"spell_id"`
}

// PreviewCastResponse contains the price
type PreviewCastResponse struct {
	Preview *Preview `json:"preview"`
}

// Preview is what a casting dialog shows before the cast button
type Preview struct {
	Spell               *vagabond.SpellDefinition `json:"spell"`
	State               *vagabond.SpellState      `json:"state"`
	Costs               vagabond.CostBreakdown    `json:"costs"`
	CanCast             bool                      `json:"can_cast"`
	Reason              string                    `json:"reason,omitempty"`
	Message             string                    `json:"message,omitempty"`
	SizeHint            string                    `json:"size_hint,omitempty"`
	DeliveryText        string                    `json:"delivery_text,omitempty"`
	CanIncreaseDelivery bool                      `json:"can_increase_delivery"`
	HasDamage           bool                      `json:"has_damage"`
	Mana                vagabond.ResourcePool     `json:"mana"`
	FavorHinder         string                    `json:"favor_hinder"`
	Deliveries          []*DeliveryOption         `json:"deliveries"`
}

// DeliveryOption is one selectable delivery method
type DeliveryOption struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	Cost         int    `json:"cost"`
	IncreaseCost int    `json:"increase_cost,omitempty"`
}

// CastRequest commits the stored configuration
type CastRequest struct {
	ActorID string            `json:"actor_id"`
	SpellID string            `json:"spell_id"`
	Shift   bool              `json:"shift,omitempty"`
	Ctrl    bool              `json:"ctrl,omitempty"`
	Targets []vagabond.Target `json:"targets,omitempty"`
}

// CastResponse is the terminal stage of the cast
type CastResponse struct {
	Stage     string               `json:"stage"`
	Path      []string             `json:"path"`
	Rejection *Rejection           `json:"rejection,omitempty"`
	Result    *vagabond.CastResult `json:"result,omitempty"`
}

// Rejection explains a rejected cast
type Rejection struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// SetFavorHinderRequest replaces the actor's favor/hinder status
type SetFavorHinderRequest struct {
	ActorID     string `json:"actor_id"`
	FavorHinder string `json:"favor_hinder"`
}

// SetFavorHinderResponse echoes the stored status
type SetFavorHinderResponse struct {
	FavorHinder string `json:"favor_hinder"`
}

// AdjustLuckRequest spends or regains luck
type AdjustLuckRequest struct {
	ActorID string `json:"actor_id"`
	Delta   int    `json:"delta"`
}

// AdjustLuckResponse contains the clamped pool
type AdjustLuckResponse struct {
	Luck    vagabond.LuckPool `json:"luck"`
	Changed bool              `json:"changed"`
}

// RollSkillRequest rolls a skill check
type RollSkillRequest struct {
	ActorID  string `json:"actor_id"`
	SkillKey string `json:"skill_key"`
	Shift    bool   `json:"shift,omitempty"`
	Ctrl     bool   `json:"ctrl,omitempty"`
}

// RollSaveRequest rolls a saving throw
type RollSaveRequest struct {
	ActorID string `json:"actor_id"`
	SaveKey string `json:"save_key"`
	Shift   bool   `json:"shift,omitempty"`
	Ctrl    bool   `json:"ctrl,omitempty"`
}

// CheckResponse is the outcome of a skill or save check
type CheckResponse struct {
	Result *vagabond.CheckResult `json:"result"`
}

func convertPreview(p *spell.Preview) *Preview {
	if p == nil {
		return nil
	}

	deliveries := make([]*DeliveryOption, 0, len(p.Deliveries))
	for _, d := range p.Deliveries {
		deliveries = append(deliveries, convertDelivery(d))
	}

	return &Preview{
		Spell:               p.Spell,
		State:               p.State,
		Costs:               p.Costs,
		CanCast:             p.Verdict.CanCast,
		Reason:              string(p.Verdict.Reason),
		Message:             p.Verdict.Message,
		SizeHint:            p.SizeHint,
		DeliveryText:        p.DeliveryText,
		CanIncreaseDelivery: p.CanIncreaseDelivery,
		HasDamage:           p.HasDamage,
		Mana:                p.Mana,
		FavorHinder:         string(p.FavorHinder),
		Deliveries:          deliveries,
	}
}

func convertDelivery(d *ruleset.Delivery) *DeliveryOption {
	return &DeliveryOption{
		Key:          d.Key,
		Name:         d.Name,
		Cost:         d.Cost,
		IncreaseCost: d.IncreaseCost,
	}
}

func convertCastOutput(out *spell.CastOutput) *CastResponse {
	path := make([]string, 0, len(out.Path))
	for _, stage := range out.Path {
		path = append(path, string(stage))
	}

	resp := &CastResponse{
		Stage:  string(out.Stage),
		Path:   path,
		Result: out.Result,
	}
	if out.Rejection != nil {
		resp.Rejection = &Rejection{
			Reason:  string(out.Rejection.Reason),
			Message: out.Rejection.Message,
		}
	}
	return resp
}
