// Package v1alpha1 handles the generic API grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/handlers/wire"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/orchestrators/dice"
	dicesession "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/dice_session"
)

// DiceServiceName is the fully qualified gRPC service name
const DiceServiceName = "vagabond.api.v1alpha1.DiceService"

// Full method names
const (
	RollDiceMethod         = "/" + DiceServiceName + "/RollDice"
	GetRollSessionMethod   = "/" + DiceServiceName + "/GetRollSession"
	ClearRollSessionMethod = "/" + DiceServiceName + "/ClearRollSession"
)

// RollDiceRequest rolls dice by notation
type RollDiceRequest struct {
	EntityID    string `json:"entity_id"`
	Context     string `json:"context"`
	Notation    string `json:"notation"`
	Description string `json:"description,omitempty"`
}

// RollDiceResponse contains every roll in the session after the new one
type RollDiceResponse struct {
	Rolls     []dicesession.DiceRoll `json:"rolls"`
	ExpiresAt int64                  `json:"expires_at"`
}

// GetRollSessionRequest reads a roll trail, e.g. context "spell:firebolt"
type GetRollSessionRequest struct {
	EntityID string `json:"entity_id"`
	Context  string `json:"context"`
}

// GetRollSessionResponse contains the trail
type GetRollSessionResponse struct {
	Rolls     []dicesession.DiceRoll `json:"rolls"`
	ExpiresAt int64                  `json:"expires_at"`
}

// ClearRollSessionRequest deletes a roll trail
type ClearRollSessionRequest struct {
	EntityID string `json:"entity_id"`
	Context  string `json:"context"`
}

// ClearRollSessionResponse reports how many rolls were dropped
type ClearRollSessionResponse struct {
	RollsDeleted int32 `json:"rolls_deleted"`
}

// DiceServiceServer is implemented by DiceHandler
type DiceServiceServer interface {
	RollDice(context.Context, *RollDiceRequest) (*RollDiceResponse, error)
	GetRollSession(context.Context, *GetRollSessionRequest) (*GetRollSessionResponse, error)
	ClearRollSession(context.Context, *ClearRollSessionRequest) (*ClearRollSessionResponse, error)
}

// DiceServiceDesc describes the service for grpc.Server registration
var DiceServiceDesc = grpc.ServiceDesc{
	ServiceName: DiceServiceName,
	HandlerType: (*DiceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RollDice",
			Handler: wire.Unary(RollDiceMethod, func(srv any, ctx context.Context, req *RollDiceRequest) (*RollDiceResponse, error) {
				return srv.(DiceServiceServer).RollDice(ctx, req)
			}),
		},
		{
			MethodName: "GetRollSession",
			Handler: wire.Unary(GetRollSessionMethod, func(srv any, ctx context.Context, req *GetRollSessionRequest) (*GetRollSessionResponse, error) {
				return srv.(DiceServiceServer).GetRollSession(ctx, req)
			}),
		},
		{
			MethodName: "ClearRollSession",
			Handler: wire.Unary(ClearRollSessionMethod, func(srv any, ctx context.Context, req *ClearRollSessionRequest) (*ClearRollSessionResponse, error) {
				return srv.(DiceServiceServer).ClearRollSession(ctx, req)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vagabond/api/v1alpha1/dice.json",
}

// RegisterDiceServiceServer registers the handler on a gRPC server
func RegisterDiceServiceServer(s grpc.ServiceRegistrar, srv DiceServiceServer) {
	s.RegisterService(&DiceServiceDesc, srv)
}

// DiceHandlerConfig holds dependencies for the dice handler
type DiceHandlerConfig struct {
	DiceService dice.Service
}

// Validate ensures all required dependencies are present
func (c *DiceHandlerConfig) Validate() error {
	if c.DiceService == nil {
		return errors.InvalidArgument("dice service is required")
	}
	return nil
}

// DiceHandler implements the generic dice gRPC service
type DiceHandler struct {
	diceService dice.Service
}

var _ DiceServiceServer = (*DiceHandler)(nil)

// NewDiceHandler creates a new dice handler with the given configuration
func NewDiceHandler(cfg *DiceHandlerConfig) (*DiceHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &DiceHandler{
		diceService: cfg.DiceService,
	}, nil
}

// RollDice rolls dice using the specified notation and stores the result in a session
func (h *DiceHandler) RollDice(
	ctx context.Context,
	req *RollDiceRequest,
) (*RollDiceResponse, error) {
	if req.EntityID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}
	if req.Context == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("context is required"))
	}
	if req.Notation == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("notation is required"))
	}

	diceOutput, err := h.diceService.RollDice(ctx, &dice.RollDiceInput{
		EntityID:    req.EntityID,
		Context:     req.Context,
		Notation:    req.Notation,
		Description: req.Description,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RollDiceResponse{
		Rolls:     diceOutput.Session.Rolls,
		ExpiresAt: diceOutput.Session.ExpiresAt.Unix(),
	}, nil
}

// GetRollSession retrieves an existing dice roll session
func (h *DiceHandler) GetRollSession(
	ctx context.Context,
	req *GetRollSessionRequest,
) (*GetRollSessionResponse, error) {
	if req.EntityID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}
	if req.Context == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("context is required"))
	}

	diceOutput, err := h.diceService.GetRollSession(ctx, &dice.GetRollSessionInput{
		EntityID: req.EntityID,
		Context:  req.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetRollSessionResponse{
		Rolls:     diceOutput.Session.Rolls,
		ExpiresAt: diceOutput.Session.ExpiresAt.Unix(),
	}, nil
}

// ClearRollSession deletes a dice roll session
func (h *DiceHandler) ClearRollSession(
	ctx context.Context,
	req *ClearRollSessionRequest,
) (*ClearRollSessionResponse, error) {
	if req.EntityID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}
	if req.Context == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("context is required"))
	}

	diceOutput, err := h.diceService.ClearRollSession(ctx, &dice.ClearRollSessionInput{
		EntityID: req.EntityID,
		Context:  req.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ClearRollSessionResponse{
		RollsDeleted: diceOutput.RollsDeleted,
	}, nil
}
