package core

// ScreenStack holds the overlays drawn above the active tab. Only the top
// one receives input.
type ScreenStack []Screen

func (s *ScreenStack) Push(screen Screen) {
	if screen != nil {
		*s = append(*s, screen)
	}
}

func (s *ScreenStack) Pop() Screen {
	top := s.Top()
	if top != nil {
		*s = (*s)[:len(*s)-1]
	}
	return top
}

func (s ScreenStack) Top() Screen {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// Replace swaps the top screen for next. A nil next keeps the current one.
func (s ScreenStack) Replace(next Screen) {
	if len(s) > 0 && next != nil {
		s[len(s)-1] = next
	}
}

func (s ScreenStack) Len() int {
	return len(s)
}
