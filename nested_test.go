package framekit

import (
	"errors"
	"testing"
)

func TestParentStack(t *testing.T) {
	t.Run("current starts at root", func(t *testing.T) {
		root := NewFrame(nil)
		stack := NewParentStack(root)

		if stack.Current() != Container(root) {
			t.Error("expected root as initial parent")
		}
		if stack.Depth() != 0 {
			t.Errorf("depth = %d, want 0", stack.Depth())
		}
	})

	t.Run("enter pushes and reparents", func(t *testing.T) {
		root := NewFrame(nil)
		stack := NewParentStack(root)

		outer := stack.Enter()
		if stack.Depth() != 1 {
			t.Errorf("depth = %d, want 1", stack.Depth())
		}
		if outer.Parent() != Container(root) {
			t.Error("outer frame should parent to root")
		}

		// widgets created while the scope is open land in it
		label := NewLabel(stack.Current(), "inside")
		if label.Parent() != Container(outer.Frame) {
			t.Error("label should parent to the open scope")
		}

		inner := stack.Enter()
		if inner.Parent() != Container(outer.Frame) {
			t.Error("inner frame should parent to outer")
		}
		if stack.Depth() != 2 {
			t.Errorf("depth = %d, want 2", stack.Depth())
		}
	})

	t.Run("balanced enters and exits drain the stack", func(t *testing.T) {
		root := NewFrame(nil)
		stack := NewParentStack(root)

		stack.Enter()
		stack.Enter()
		stack.Enter()

		for i := 3; i > 0; i-- {
			if err := stack.Exit(); err != nil {
				t.Fatalf("exit %d: %v", i, err)
			}
		}
		if stack.Depth() != 0 {
			t.Errorf("depth = %d, want 0", stack.Depth())
		}
		if stack.Current() != Container(root) {
			t.Error("current should return to root")
		}
	})

	t.Run("exit on empty stack errors", func(t *testing.T) {
		stack := NewParentStack(NewFrame(nil))
		if err := stack.Exit(); !errors.Is(err, ErrStackUnderflow) {
			t.Errorf("got %v, want ErrStackUnderflow", err)
		}
	})

	t.Run("frame exit after pop errors", func(t *testing.T) {
		stack := NewParentStack(NewFrame(nil))
		nf := stack.Enter()
		if err := nf.Exit(); err != nil {
			t.Fatalf("first exit: %v", err)
		}
		if err := nf.Exit(); !errors.Is(err, ErrStackUnderflow) {
			t.Errorf("second exit: got %v, want ErrStackUnderflow", err)
		}
	})

	t.Run("nest pops on return", func(t *testing.T) {
		root := NewFrame(nil)
		stack := NewParentStack(root)

		nf := stack.Nest(func(nf *NestedFrame) {
			NewLabel(stack.Current(), "scoped")
			if stack.Depth() != 1 {
				t.Errorf("depth inside = %d, want 1", stack.Depth())
			}
		})

		if stack.Depth() != 0 {
			t.Errorf("depth after = %d, want 0", stack.Depth())
		}
		if len(nf.Children()) != 1 {
			t.Errorf("scope children = %d, want 1", len(nf.Children()))
		}
	})

	t.Run("nest pops across panic", func(t *testing.T) {
		root := NewFrame(nil)
		stack := NewParentStack(root)

		func() {
			defer func() { recover() }()
			stack.Nest(func(*NestedFrame) {
				panic("construction failed")
			})
		}()

		if stack.Depth() != 0 {
			t.Errorf("depth after panic = %d, want 0", stack.Depth())
		}
		if stack.Current() != Container(root) {
			t.Error("current should return to root after panic")
		}
	})

	t.Run("deep nesting", func(t *testing.T) {
		root := NewFrame(nil)
		stack := NewParentStack(root)

		const depth = 50
		frames := make([]*NestedFrame, depth)
		for i := range frames {
			frames[i] = stack.Enter()
		}
		for i := 1; i < depth; i++ {
			if frames[i].Parent() != Container(frames[i-1].Frame) {
				t.Fatalf("frame %d not parented to frame %d", i, i-1)
			}
		}
		for range frames {
			if err := stack.Exit(); err != nil {
				t.Fatal(err)
			}
		}
		if stack.Depth() != 0 {
			t.Errorf("depth = %d, want 0", stack.Depth())
		}
	})

	t.Run("mixed with plain construction", func(t *testing.T) {
		root := NewFrame(nil)
		stack := NewParentStack(root)

		// a plain frame added directly while a scope is open does not
		// disturb the stack
		nf := stack.Enter()
		plain := NewFrame(root)
		if stack.Current() != Container(nf.Frame) {
			t.Error("plain construction should not change the implicit parent")
		}
		if plain.Parent() != Container(root) {
			t.Error("plain frame should keep its explicit parent")
		}
		if err := stack.Exit(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("nil root", func(t *testing.T) {
		stack := NewParentStack(nil)
		nf := stack.Enter()
		if nf.Parent() != nil {
			t.Error("outermost frame should be detached with nil root")
		}
		if err := stack.Exit(); err != nil {
			t.Fatal(err)
		}
	})
}
