package framekit

import "errors"

// ErrStackUnderflow is returned by Exit when no scope is open.
var ErrStackUnderflow = errors.New("framekit: exit without matching enter")

// ParentStack tracks the implicit parent during declarative construction.
// Enter pushes a fresh container under the current parent, Exit pops it;
// widgets created between a matching Enter/Exit pair parent to the pushed
// container. The stack exists only while the tree is being built: a balanced
// sequence of calls leaves it empty, and it plays no part in layout.
type ParentStack struct {
	root   Container
	frames []*NestedFrame
}

// NewParentStack creates a stack rooted at the given container. The root is
// where top-level frames land; it may be nil, in which case the outermost
// entered frame becomes a detached tree root.
func NewParentStack(root Container) *ParentStack {
	return &ParentStack{root: root}
}

// Current returns the implicit parent for new widgets: the innermost open
// scope's container, or the root when no scope is open.
func (p *ParentStack) Current() Container {
	if len(p.frames) > 0 {
		return p.frames[len(p.frames)-1].Frame
	}
	return p.root
}

// Depth returns the number of open scopes.
func (p *ParentStack) Depth() int {
	return len(p.frames)
}

// Enter opens a scope: it creates a new frame under the current implicit
// parent, pushes it, and returns its handle. Nesting depth is unbounded.
func (p *ParentStack) Enter() *NestedFrame {
	nf := &NestedFrame{
		Frame: NewFrame(p.Current()),
		stack: p,
	}
	p.frames = append(p.frames, nf)
	return nf
}

// Exit closes the innermost scope, restoring its parent as the implicit
// parent. Calling Exit with no open scope is a construction misuse and
// returns ErrStackUnderflow.
func (p *ParentStack) Exit() error {
	if len(p.frames) == 0 {
		return ErrStackUnderflow
	}
	p.frames[len(p.frames)-1].stack = nil
	p.frames = p.frames[:len(p.frames)-1]
	return nil
}

// Nest runs fn inside a freshly entered scope and returns the scope's frame.
// The scope is popped on every exit path, including a panic inside fn, so
// the stack stays balanced no matter how construction code fails.
func (p *ParentStack) Nest(fn func(*NestedFrame)) *NestedFrame {
	nf := p.Enter()
	defer p.Exit()
	fn(nf)
	return nf
}

// NestedFrame is the handle returned by Enter: a plain frame plus the stack
// discipline. It has no resize-time behavior of its own; all layout is the
// delegate frame's. It exists so construction code can configure the scope's
// container (border, gap, background) while the scope is open.
type NestedFrame struct {
	*Frame
	stack *ParentStack
}

// Exit closes this frame's scope. Equivalent to calling Exit on the stack,
// provided this frame is the innermost open scope; closing out of order
// returns ErrStackUnderflow once the stack has already drained.
func (n *NestedFrame) Exit() error {
	if n.stack == nil {
		return ErrStackUnderflow
	}
	return n.stack.Exit()
}
