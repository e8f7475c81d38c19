package control

// Frame is an open container.
type Frame struct {
	Type Type

	// Count is the number of fields read from the container so far.
	Count uint64
}

type Stack []*Frame

func (s *Stack) Push(f *Frame) {
	*s = append(*s, f)
}

func (s *Stack) Top() *Frame {
	if len(*s) == 0 {
		return nil
	}

	return (*s)[len(*s)-1]
}

// Pop closes the innermost container. It fails if t does not close it.
func (s *Stack) Pop(t Type) (err error) {
	top := s.Top()
	if top == nil {
		return Error.New("unexpected %s (not in a container)", t)
	}

	if t != ContainerEnd || top.Type != ContainerUnbounded {
		return Error.New("unexpected %s (container %s)", t, top.Type)
	}

	*s = (*s)[:len(*s)-1]

	return nil
}

// Count records a field read in the innermost container.
func (s *Stack) Count() {
	if top := s.Top(); top != nil {
		top.Count++
	}
}
