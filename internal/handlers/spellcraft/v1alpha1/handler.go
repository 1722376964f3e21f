// Package v1alpha1 handles the spellcraft grpc service interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/orchestrators/spell"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	SpellService spell.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.SpellService == nil {
		return errors.InvalidArgument("spell service is required")
	}
	return nil
}

// Handler implements the spellcraft gRPC service
type Handler struct {
	spellService spell.Service
}

var _ SpellServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		spellService: cfg.SpellService,
	}, nil
}

// GetSpellState returns the stored configuration or the defaults
func (h *Handler) GetSpellState(
	ctx context.Context,
	req *GetSpellStateRequest,
) (*GetSpellStateResponse, error) {
	output, err := h.spellService.GetSpellState(ctx, &spell.GetSpellStateInput{
		ActorID: req.ActorID,
		SpellID: req.SpellID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetSpellStateResponse{
		Spell:     output.Spell,
		State:     output.State,
		IsDefault: output.IsDefault,
	}, nil
}

// UpdateSpellState applies one transition
func (h *Handler) UpdateSpellState(
	ctx context.Context,
	req *UpdateSpellStateRequest,
) (*UpdateSpellStateResponse, error) {
	if req.Action == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("action is required"))
	}

	output, err := h.spellService.UpdateSpellState(ctx, &spell.UpdateSpellStateInput{
		ActorID:      req.ActorID,
		SpellID:      req.SpellID,
		Action:       vagabond.SpellStateAction(req.Action),
		DeliveryType: req.DeliveryType,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UpdateSpellStateResponse{
		State:   output.State,
		Preview: convertPreview(output.Preview),
	}, nil
}

// PreviewCast prices the stored configuration
func (h *Handler) PreviewCast(
	ctx context.Context,
	req *PreviewCastRequest,
) (*PreviewCastResponse, error) {
	output, err := h.spellService.PreviewCast(ctx, &spell.PreviewCastInput{
		ActorID: req.ActorID,
		SpellID: req.SpellID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &PreviewCastResponse{Preview: convertPreview(output.Preview)}, nil
}

// Cast commits the stored configuration. A rejected cast is a normal response.
func (h *Handler) Cast(
	ctx context.Context,
	req *CastRequest,
) (*CastResponse, error) {
	output, err := h.spellService.Cast(ctx, &spell.CastInput{
		ActorID: req.ActorID,
		SpellID: req.SpellID,
		Shift:   req.Shift,
		Ctrl:    req.Ctrl,
		Targets: req.Targets,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return convertCastOutput(output), nil
}

// SetFavorHinder replaces the actor's favor/hinder status
func (h *Handler) SetFavorHinder(
	ctx context.Context,
	req *SetFavorHinderRequest,
) (*SetFavorHinderResponse, error) {
	output, err := h.spellService.SetFavorHinder(ctx, &spell.SetFavorHinderInput{
		ActorID:     req.ActorID,
		FavorHinder: vagabond.FavorHinder(req.FavorHinder),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetFavorHinderResponse{FavorHinder: string(output.FavorHinder)}, nil
}

// AdjustLuck spends or regains luck
func (h *Handler) AdjustLuck(
	ctx context.Context,
	req *AdjustLuckRequest,
) (*AdjustLuckResponse, error) {
	output, err := h.spellService.AdjustLuck(ctx, &spell.AdjustLuckInput{
		ActorID: req.ActorID,
		Delta:   req.Delta,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AdjustLuckResponse{Luck: output.Luck, Changed: output.Changed}, nil
}

// RollSkill rolls a skill check
func (h *Handler) RollSkill(
	ctx context.Context,
	req *RollSkillRequest,
) (*CheckResponse, error) {
	output, err := h.spellService.RollSkill(ctx, &spell.RollSkillInput{
		ActorID:  req.ActorID,
		SkillKey: req.SkillKey,
		Shift:    req.Shift,
		Ctrl:     req.Ctrl,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CheckResponse{Result: output.Result}, nil
}

// RollSave rolls a saving throw
func (h *Handler) RollSave(
	ctx context.Context,
	req *RollSaveRequest,
) (*CheckResponse, error) {
	output, err := h.spellService.RollSave(ctx, &spell.RollSaveInput{
		ActorID: req.ActorID,
		SaveKey: req.SaveKey,
		Shift:   req.Shift,
		Ctrl:    req.Ctrl,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CheckResponse{Result: output.Result}, nil
}
