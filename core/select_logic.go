package core

// ControlState is the interaction state of one select control. Selected is
// empty while nothing has been chosen.
type ControlState struct {
	Open     bool
	Selected string
}

type SelectOption func(*SelectControl)

// WithInitialValue seeds the selection. It is read once, at construction.
func WithInitialValue(value string) SelectOption {
	return func(c *SelectControl) {
		c.state.Selected = value
	}
}

// WithValueChange registers the callback fired once per committed selection.
func WithValueChange(fn func(string)) SelectOption {
	return func(c *SelectControl) {
		c.onChange = fn
	}
}

// SelectControl owns the open/selected state of a dropdown and hands props to
// its declared children on every composition. Children only reach the state
// through the two callbacks it injects.
type SelectControl struct {
	children []SelectNode
	state    ControlState
	onChange func(string)
}

func NewSelectControl(children []SelectNode, opts ...SelectOption) *SelectControl {
	c := &SelectControl{children: cloneNodes(children)}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *SelectControl) State() ControlState {
	if c == nil {
		return ControlState{}
	}
	return c.state
}

func (c *SelectControl) Children() []SelectNode {
	if c == nil {
		return nil
	}
	return cloneNodes(c.children)
}

// Compose classifies the direct children by role and returns them with the
// props their role receives. Unrecognised children come back untouched.
func (c *SelectControl) Compose() []Composed {
	if c == nil {
		return nil
	}
	out := make([]Composed, 0, len(c.children))
	for _, child := range c.children {
		switch child.Role {
		case RoleTrigger:
			out = append(out, composeTrigger(child, TriggerProps{
				CurrentValue: c.state.Selected,
				OnActivate:   c.toggleOpen,
			}))
		case RoleContentPanel:
			out = append(out, composeContent(child, ContentProps{
				Open:         c.state.Open,
				CurrentValue: c.state.Selected,
				OnCommit:     c.commit,
			}))
		default:
			out = append(out, passThrough(child))
		}
	}
	return out
}

func (c *SelectControl) toggleOpen() {
	c.state.Open = !c.state.Open
}

func (c *SelectControl) commit(value string) {
	c.state.Selected = value
	c.state.Open = false
	if c.onChange != nil {
		c.onChange(value)
	}
}
