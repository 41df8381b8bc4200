package logctx

import "context"

// stackKey is the context key under which a task's stack travels.
type stackKey struct{}

// NewContext returns a context carrying a fresh, empty stack. Any stack
// already present in the parent is shadowed: a logical task handed the
// returned context starts with no inherited frames, regardless of what its
// parent had active at spawn time.
func NewContext(parent context.Context) context.Context {
	return ToContext(parent, NewStack())
}

// ToContext returns a context carrying the given stack.
func ToContext(parent context.Context, stack *Stack) context.Context {
	return context.WithValue(parent, stackKey{}, stack)
}

// StackFromContext returns the stack carried by ctx, or nil if the context
// has none.
func StackFromContext(ctx context.Context) *Stack {
	stack, _ := ctx.Value(stackKey{}).(*Stack)
	return stack
}

// Enter pushes a frame built from the given key/value pairs onto the stack
// carried by ctx and returns the scope handle releasing it. If ctx carries no
// stack yet, one is seeded lazily and the returned context carries it;
// otherwise the input context is returned unchanged and the push is visible
// to every holder of the same stack.
func Enter(ctx context.Context, kvs ...any) (context.Context, *Scope) {
	stack := StackFromContext(ctx)
	if stack == nil {
		stack = NewStack()
		ctx = ToContext(ctx, stack)
	}

	return ctx, stack.Enter(kvs...)
}

// Current returns the effective context for ctx, or an empty field list when
// ctx carries no stack or the stack is fully unwound. Safe to call at any
// time, including outside any scope.
func Current(ctx context.Context) []Field {
	stack := StackFromContext(ctx)
	if stack == nil {
		return nil
	}

	return stack.Current()
}
