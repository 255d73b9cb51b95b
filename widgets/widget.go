package widgets

// Widget renders itself into exactly the space it is given.
type Widget interface {
	Render(width, height int) string
}

// Text renders a fixed string, clipped to the given box.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := splitToLines(string(t), height)
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return joinLines(lines)
}
