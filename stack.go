package logctx

import (
	"errors"
	"fmt"
)

// Static error definitions for scope misuse.
var (
	// ErrScopeExited indicates that Exit was called twice on the same scope.
	ErrScopeExited = errors.New("scope has already been exited")
	// ErrOutOfOrderExit indicates an attempt to exit a scope that is not the
	// top of the stack.
	ErrOutOfOrderExit = errors.New("out-of-order scope exit")
)

// Stack is the ordered sequence of context frames owned by one logical task.
// It is deliberately unsynchronized: a stack must be confined to a single
// task, and tasks never share stacks. Use NewContext to give a spawned
// goroutine its own empty stack.
type Stack struct {
	// scopes holds the active scopes in push order, bottom first.
	scopes []*Scope
}

// Scope is the handle returned by Enter. It pops exactly the frame it pushed
// and must be released on every exit path, typically via defer.
type Scope struct {
	// stack is the owning stack, nil once the scope has been exited.
	stack *Stack
	// fields is the frame pushed by this scope, immutable after Enter.
	fields []Field
	// exited is set by Exit to catch repeated release.
	exited bool
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Enter pushes a new frame built from the given key/value pairs and returns
// the scope handle that releases it.
func (s *Stack) Enter(kvs ...any) *Scope {
	scope := &Scope{
		stack:  s,
		fields: newFrame(kvs),
	}

	s.scopes = append(s.scopes, scope)

	return scope
}

// Depth returns the number of active frames.
func (s *Stack) Depth() int {
	return len(s.scopes)
}

// Current returns the effective context: all active frames merged bottom to
// top, with more recently pushed frames overriding earlier ones on key
// collision. The result is computed from the live stack on every call and is
// empty after a full unwind.
func (s *Stack) Current() []Field {
	var merged []Field
	for _, scope := range s.scopes {
		merged = mergeFields(merged, scope.fields)
	}

	return merged
}

// Exit pops the frame pushed by the matching Enter. Scopes must unwind in
// strict LIFO order: exiting a scope that is not the top of the stack, or
// exiting the same scope twice, is a bug in the caller and panics without
// touching the remaining frames.
func (sc *Scope) Exit() {
	if sc.exited {
		panic(ErrScopeExited)
	}

	stack := sc.stack
	top := len(stack.scopes) - 1

	if top < 0 || stack.scopes[top] != sc {
		panic(fmt.Errorf("%w: %d frame(s) entered after this scope are still active",
			ErrOutOfOrderExit, remainingAbove(stack, sc)))
	}

	stack.scopes = stack.scopes[:top]
	sc.exited = true
	sc.stack = nil
}

// remainingAbove counts active frames pushed after the given scope.
func remainingAbove(stack *Stack, sc *Scope) int {
	for i := len(stack.scopes) - 1; i >= 0; i-- {
		if stack.scopes[i] == sc {
			return len(stack.scopes) - 1 - i
		}
	}

	return len(stack.scopes)
}
