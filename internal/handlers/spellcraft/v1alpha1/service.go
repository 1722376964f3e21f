package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/handlers/wire"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "vagabond.spellcraft.v1alpha1.SpellService"

// Full method names
const (
	GetSpellStateMethod    = "/" + ServiceName + "/GetSpellState"
	UpdateSpellStateMethod = "/" + ServiceName + "/UpdateSpellState"
	PreviewCastMethod      = "/" + ServiceName + "/PreviewCast"
	CastMethod             = "/" + ServiceName + "/Cast"
	SetFavorHinderMethod   = "/" + ServiceName + "/SetFavorHinder"
	AdjustLuckMethod       = "/" + ServiceName + "/AdjustLuck"
	RollSkillMethod        = "/" + ServiceName + "/RollSkill"
	RollSaveMethod         = "/" + ServiceName + "/RollSave"
)

// SpellServiceServer is implemented by Handler
type SpellServiceServer interface {
	GetSpellState(context.Context, *GetSpellStateRequest) (*GetSpellStateResponse, error)
	UpdateSpellState(context.Context, *UpdateSpellStateRequest) (*UpdateSpellStateResponse, error)
	PreviewCast(context.Context, *PreviewCastRequest) (*PreviewCastResponse, error)
	Cast(context.Context, *CastRequest) (*CastResponse, error)
	SetFavorHinder(context.Context, *SetFavorHinderRequest) (*SetFavorHinderResponse, error)
	AdjustLuck(context.Context, *AdjustLuckRequest) (*AdjustLuckResponse, error)
	RollSkill(context.Context, *RollSkillRequest) (*CheckResponse, error)
	RollSave(context.Context, *RollSaveRequest) (*CheckResponse, error)
}

// SpellServiceDesc describes the service for grpc.Server registration
var SpellServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SpellServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetSpellState",
			Handler: wire.Unary(GetSpellStateMethod, func(srv any, ctx context.Context, req *GetSpellStateRequest) (*GetSpellStateResponse, error) {
				return srv.(SpellServiceServer).GetSpellState(ctx, req)
			}),
		},
		{
			MethodName: "UpdateSpellState",
			Handler: wire.Unary(UpdateSpellStateMethod, func(srv any, ctx context.Context, req *UpdateSpellStateRequest) (*UpdateSpellStateResponse, error) {
				return srv.(SpellServiceServer).UpdateSpellState(ctx, req)
			}),
		},
		{
			MethodName: "PreviewCast",
			Handler: wire.Unary(PreviewCastMethod, func(srv any, ctx context.Context, req *PreviewCastRequest) (*PreviewCastResponse, error) {
				return srv.(SpellServiceServer).PreviewCast(ctx, req)
			}),
		},
		{
			MethodName: "Cast",
			Handler: wire.Unary(CastMethod, func(srv any, ctx context.Context, req *CastRequest) (*CastResponse, error) {
				return srv.(SpellServiceServer).Cast(ctx, req)
			}),
		},
		{
			MethodName: "SetFavorHinder",
			Handler: wire.Unary(SetFavorHinderMethod, func(srv any, ctx context.Context, req *SetFavorHinderRequest) (*SetFavorHinderResponse, error) {
				return srv.(SpellServiceServer).SetFavorHinder(ctx, req)
			}),
		},
		{
			MethodName: "AdjustLuck",
			Handler: wire.Unary(AdjustLuckMethod, func(srv any, ctx context.Context, req *AdjustLuckRequest) (*AdjustLuckResponse, error) {
				return srv.(SpellServiceServer).AdjustLuck(ctx, req)
			}),
		},
		{
			MethodName: "RollSkill",
			Handler: wire.Unary(RollSkillMethod, func(srv any, ctx context.Context, req *RollSkillRequest) (*CheckResponse, error) {
				return srv.(SpellServiceServer).RollSkill(ctx, req)
			}),
		},
		{
			MethodName: "RollSave",
			Handler: wire.Unary(RollSaveMethod, func(srv any, ctx context.Context, req *RollSaveRequest) (*CheckResponse, error) {
				return srv.(SpellServiceServer).RollSave(ctx, req)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vagabond/spellcraft/v1alpha1/spell.json",
}

// RegisterSpellServiceServer registers the handler on a gRPC server
func RegisterSpellServiceServer(s grpc.ServiceRegistrar, srv SpellServiceServer) {
	s.RegisterService(&SpellServiceDesc, srv)
}

// SpellServiceClient calls a remote SpellService
type SpellServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSpellServiceClient wraps a client connection
func NewSpellServiceClient(cc grpc.ClientConnInterface) *SpellServiceClient {
	return &SpellServiceClient{cc: cc}
}

// GetSpellState calls SpellService.GetSpellState
func (c *SpellServiceClient) GetSpellState(ctx context.Context, req *GetSpellStateRequest, opts ...grpc.CallOption) (*GetSpellStateResponse, error) {
	return wire.Invoke[GetSpellStateRequest, GetSpellStateResponse](ctx, c.cc, GetSpellStateMethod, req, opts...)
}

// UpdateSpellState calls SpellService.UpdateSpellState
func (c *SpellServiceClient) UpdateSpellState(ctx context.Context, req *UpdateSpellStateRequest, opts ...grpc.CallOption) (*UpdateSpellStateResponse, error) {
	return wire.Invoke[UpdateSpellStateRequest, UpdateSpellStateResponse](ctx, c.cc, UpdateSpellStateMethod, req, opts...)
}

// PreviewCast calls SpellService.PreviewCast
func (c *SpellServiceClient) PreviewCast(ctx context.Context, req *PreviewCastRequest, opts ...grpc.CallOption) (*PreviewCastResponse, error) {
	return wire.Invoke[PreviewCastRequest, PreviewCastResponse](ctx, c.cc, PreviewCastMethod, req, opts...)
}

// Cast calls SpellService.Cast
func (c *SpellServiceClient) Cast(ctx context.Context, req *CastRequest, opts ...grpc.CallOption) (*CastResponse, error) {
	return wire.Invoke[CastRequest, CastResponse](ctx, c.cc, CastMethod, req, opts...)
}

// SetFavorHinder calls SpellService.SetFavorHinder
func (c *SpellServiceClient) SetFavorHinder(ctx context.Context, req *SetFavorHinderRequest, opts ...grpc.CallOption) (*SetFavorHinderResponse, error) {
	return wire.Invoke[SetFavorHinderRequest, SetFavorHinderResponse](ctx, c.cc, SetFavorHinderMethod, req, opts...)
}

// AdjustLuck calls SpellService.AdjustLuck
func (c *SpellServiceClient) AdjustLuck(ctx context.Context, req *AdjustLuckRequest, opts ...grpc.CallOption) (*AdjustLuckResponse, error) {
	return wire.Invoke[AdjustLuckRequest, AdjustLuckResponse](ctx, c.cc, AdjustLuckMethod, req, opts...)
}

// RollSkill calls SpellService.RollSkill
func (c *SpellServiceClient) RollSkill(ctx context.Context, req *RollSkillRequest, opts ...grpc.CallOption) (*CheckResponse, error) {
	return wire.Invoke[RollSkillRequest, CheckResponse](ctx, c.cc, RollSkillMethod, req, opts...)
}

// RollSave calls SpellService.RollSave
func (c *SpellServiceClient) RollSave(ctx context.Context, req *RollSaveRequest, opts ...grpc.CallOption) (*CheckResponse, error) {
	return wire.Invoke[RollSaveRequest, CheckResponse](ctx, c.cc, RollSaveMethod, req, opts...)
}
