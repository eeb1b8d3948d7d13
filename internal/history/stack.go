package history

import "github.com/undolab/rewind/internal/action"

// Stack is a persistent frame stack. Index 0 is the bottom (oldest); the
// top is the last element. Push and Pop return new stacks; the backing
// array of an existing stack is never written through.
type Stack struct {
	frames []*Frame
}

// Len returns the number of frames.
func (s Stack) Len() int {
	return len(s.frames)
}

// Top returns the top frame, or nil if the stack is empty.
func (s Stack) Top() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// Push returns a stack with f on top.
func (s Stack) Push(f *Frame) Stack {
	frames := make([]*Frame, 0, len(s.frames)+1)
	frames = append(frames, s.frames...)
	return Stack{frames: append(frames, f)}
}

// Pop returns the top frame and the stack without it.
// Pop of an empty stack returns (nil, s).
func (s Stack) Pop() (*Frame, Stack) {
	n := len(s.frames)
	if n == 0 {
		return nil, s
	}
	rest := make([]*Frame, n-1)
	copy(rest, s.frames[:n-1])
	return s.frames[n-1], Stack{frames: rest}
}

// ReplaceTop returns a stack with the top frame swapped for f.
// Panics if the stack is empty; callers check Top first.
func (s Stack) ReplaceTop(f *Frame) Stack {
	n := len(s.frames)
	frames := make([]*Frame, n)
	copy(frames, s.frames)
	frames[n-1] = f
	return Stack{frames: frames}
}

// DropBottom removes the n oldest frames, returning them in order along
// with the remaining stack.
func (s Stack) DropBottom(n int) ([]*Frame, Stack) {
	if n <= 0 {
		return nil, s
	}
	if n > len(s.frames) {
		n = len(s.frames)
	}
	dropped := make([]*Frame, n)
	copy(dropped, s.frames[:n])
	rest := make([]*Frame, len(s.frames)-n)
	copy(rest, s.frames[n:])
	return dropped, Stack{frames: rest}
}

// Frames returns the frames bottom-first. The returned slice is a copy.
func (s Stack) Frames() []*Frame {
	frames := make([]*Frame, len(s.frames))
	copy(frames, s.frames)
	return frames
}

// Flatten concatenates the actions of every frame, bottom-first.
// This is the replay order for the stack.
func (s Stack) Flatten() []action.Action {
	var out []action.Action
	for _, f := range s.frames {
		out = append(out, f.Actions...)
	}
	return out
}

// AnyActive reports whether at least one frame is active.
func (s Stack) AnyActive() bool {
	for _, f := range s.frames {
		if f.Active {
			return true
		}
	}
	return false
}
