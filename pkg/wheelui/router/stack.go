package router

// Handle is a stable reference to a screen registered with a Router.
// Handles are assigned in registration order; Home is always zero.
type Handle int

const (
	// Home is the handle of the screen the router was created with.
	Home Handle = 0
	// None is returned where no screen applies.
	None Handle = -1
)

// Stack is a fixed-size stack of handles. Slot zero holds the home
// screen and is never removed.
type Stack struct {
	entries []Handle
	top     int
}

// NewStack creates a stack with room for depth screens above home.
func NewStack(home Handle, depth int) *Stack {
	if depth < 0 {
		depth = 0
	}
	s := &Stack{entries: make([]Handle, depth+1)}
	s.entries[0] = home
	return s
}

// Push places h on top. It returns false, leaving the stack untouched,
// when the stack is already at full depth.
func (s *Stack) Push(h Handle) bool {
	if s.top+1 >= len(s.entries) {
		return false
	}
	s.top++
	s.entries[s.top] = h
	return true
}

// Pop removes the top entry. Popping at home does nothing and returns false.
func (s *Stack) Pop() (Handle, bool) {
	if s.top == 0 {
		return None, false
	}
	h := s.entries[s.top]
	s.top--
	return h, true
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() Handle {
	return s.entries[s.top]
}

// AtHome returns true if only the home entry remains.
func (s *Stack) AtHome() bool {
	return s.top == 0
}

// Len returns the number of entries above home.
func (s *Stack) Len() int {
	return s.top
}

// Cap returns the maximum number of entries above home.
func (s *Stack) Cap() int {
	return len(s.entries) - 1
}

// Clear unwinds back to home.
func (s *Stack) Clear() {
	s.top = 0
}
