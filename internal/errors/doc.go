// Package errors is the structured error type used across the spellcraft
// service.
//
// Every error carries a Code that maps one to one onto a gRPC status code, a
// human readable message and optional metadata. Repositories and
// orchestrators return *Error values and wrap lower level failures with Wrap
// or WrapWithCode, which keep the original cause reachable through
// errors.Unwrap. Handlers convert at the edge with ToGRPCError, which attaches
// the metadata as an ErrorInfo detail so clients can read it back with
// FromGRPCError.
//
//	if errors.IsNotFound(err) {
//		state = vagabond.NewSpellState(def)
//	}
//
// Input validation accumulates field errors with a ValidationBuilder and
// yields a single InvalidArgument error:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("actor_id", input.ActorID, vb)
//	if err := vb.Build(); err != nil {
//		return nil, err
//	}
package errors
