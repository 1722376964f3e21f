package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/handlers/wire"
)

// DiceServiceClient calls a remote DiceService
type DiceServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDiceServiceClient wraps a client connection
func NewDiceServiceClient(cc grpc.ClientConnInterface) *DiceServiceClient {
	return &DiceServiceClient{cc: cc}
}

// RollDice calls DiceService.RollDice
func (c *DiceServiceClient) RollDice(ctx context.Context, req *RollDiceRequest, opts ...grpc.CallOption) (*RollDiceResponse, error) {
	return wire.Invoke[RollDiceRequest, RollDiceResponse](ctx, c.cc, RollDiceMethod, req, opts...)
}

// GetRollSession calls DiceService.GetRollSession
func (c *DiceServiceClient) GetRollSession(ctx context.Context, req *GetRollSessionRequest, opts ...grpc.CallOption) (*GetRollSessionResponse, error) {
	return wire.Invoke[GetRollSessionRequest, GetRollSessionResponse](ctx, c.cc, GetRollSessionMethod, req, opts...)
}

// ClearRollSession calls DiceService.ClearRollSession
func (c *DiceServiceClient) ClearRollSession(ctx context.Context, req *ClearRollSessionRequest, opts ...grpc.CallOption) (*ClearRollSessionResponse, error) {
	return wire.Invoke[ClearRollSessionRequest, ClearRollSessionResponse](ctx, c.cc, ClearRollSessionMethod, req, opts...)
}
