// Package wire carries handler messages over gRPC as google.protobuf.Struct.
// Messages are plain Go structs with json tags, so the services need no
// generated code and stay readable with grpcurl.
package wire

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
)

// Encode converts a message into a Struct
func Encode(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal message")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to convert message to struct")
	}
	return out, nil
}

// Decode fills v from a Struct. A nil Struct decodes as an empty message.
func Decode(in *structpb.Struct, v any) error {
	if in == nil {
		in = &structpb.Struct{}
	}

	data, err := protojson.Marshal(in)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read message")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed message")
	}
	return nil
}

// Unary adapts a typed method into a grpc.MethodHandler. Interceptors see
// the decoded request.
func Unary[Req, Resp any](fullMethod string, call func(srv any, ctx context.Context, req *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := &structpb.Struct{}
		if err := dec(in); err != nil {
			return nil, err
		}

		req := new(Req)
		if err := Decode(in, req); err != nil {
			return nil, errors.ToGRPCError(err)
		}

		handler := func(ctx context.Context, r any) (any, error) {
			resp, err := call(srv, ctx, r.(*Req))
			if err != nil {
				return nil, errors.ToGRPCError(err)
			}
			out, err := Encode(resp)
			if err != nil {
				return nil, errors.ToGRPCError(err)
			}
			return out, nil
		}

		if interceptor == nil {
			return handler(ctx, req)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		return interceptor(ctx, req, info, handler)
	}
}

// Invoke calls a unary method and decodes the response. Status errors are
// converted back to *errors.Error.
func Invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, req *Req, opts ...grpc.CallOption) (*Resp, error) {
	in, err := Encode(req)
	if err != nil {
		return nil, err
	}

	out := &structpb.Struct{}
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, errors.FromGRPCError(err)
	}

	resp := new(Resp)
	if err := Decode(out, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
