package interceptor

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	logctx "github.com/neocrym/log-with-context"
)

// requestIDMetadataKey is the incoming metadata key consulted for an
// externally assigned request id.
const requestIDMetadataKey = "x-request-id"

// UnaryServerInterceptor gives every RPC its own empty field stack seeded
// with the full method name and a request id. Frames pushed while handling
// one RPC are invisible to every other RPC.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		ctx, scope := seed(ctx, info.FullMethod)
		defer scope.Exit()

		return handler(ctx, req)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		ctx, scope := seed(ss.Context(), info.FullMethod)
		defer scope.Exit()

		return handler(srv, &contextServerStream{ServerStream: ss, ctx: ctx})
	}
}

// seed derives a fresh stack for the RPC and pushes the root frame.
func seed(ctx context.Context, fullMethod string) (context.Context, *logctx.Scope) {
	ctx = logctx.NewContext(ctx)

	return logctx.Enter(ctx,
		"grpc_method", fullMethod,
		"request_id", requestID(ctx),
	)
}

// requestID returns the inbound request id from metadata or generates one.
func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(requestIDMetadataKey); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}

	return uuid.NewString()
}

// contextServerStream overrides the stream context with the seeded one.
type contextServerStream struct {
	grpc.ServerStream

	// ctx carries the RPC's field stack.
	ctx context.Context
}

// Context returns the context carrying the RPC's field stack.
func (s *contextServerStream) Context() context.Context {
	return s.ctx
}
