package core

type TriggerProps struct {
	CurrentValue string
	OnActivate   func()
}

type ContentProps struct {
	Open         bool
	CurrentValue string
	OnCommit     func(string)
}

type ItemProps struct {
	Value    string
	Selected bool
	OnSelect func(string)
}

// Composed is a child after classification. At most one of Trigger, Content
// and Item is set; pass-through children carry none of them.
type Composed struct {
	Node     SelectNode
	Trigger  *TriggerProps
	Content  *ContentProps
	Item     *ItemProps
	Children []Composed
}

func composeTrigger(node SelectNode, props TriggerProps) Composed {
	return Composed{Node: node, Trigger: &props, Children: passThroughAll(node.Children)}
}

// composeContent gates the panel on Open and wires its option items. Only the
// first item equal to the current value is marked selected, and nothing is
// marked while the value is empty.
func composeContent(node SelectNode, props ContentProps) Composed {
	composed := Composed{Node: node, Content: &props}
	if !props.Open {
		return composed
	}
	composed.Children = make([]Composed, 0, len(node.Children))
	marked := false
	for _, child := range node.Children {
		if child.Role != RoleOptionItem {
			composed.Children = append(composed.Children, passThrough(child))
			continue
		}
		item := ItemProps{
			Value:    child.Value,
			Selected: !marked && props.CurrentValue != "" && child.Value == props.CurrentValue,
			OnSelect: props.OnCommit,
		}
		marked = marked || item.Selected
		composed.Children = append(composed.Children, Composed{Node: child, Item: &item})
	}
	return composed
}

func passThrough(node SelectNode) Composed {
	return Composed{Node: node, Children: passThroughAll(node.Children)}
}

func passThroughAll(nodes []SelectNode) []Composed {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Composed, len(nodes))
	for i, n := range nodes {
		out[i] = passThrough(n)
	}
	return out
}

// Rendered reports whether the node produces output. A closed panel does not.
func (c Composed) Rendered() bool {
	return c.Content == nil || c.Content.Open
}

// TriggerText is what a trigger displays: the raw stored value when one is
// set, otherwise the text of its fallback children.
func (c Composed) TriggerText() (text string, fallback bool) {
	if c.Trigger != nil && c.Trigger.CurrentValue != "" {
		return c.Trigger.CurrentValue, false
	}
	return c.Node.PlainText(), true
}

// Activate invokes the callback the node was wired with and reports whether
// there was one. Triggers toggle the control; option items commit their value.
func (c Composed) Activate() bool {
	switch {
	case c.Trigger != nil && c.Trigger.OnActivate != nil:
		c.Trigger.OnActivate()
		return true
	case c.Item != nil && c.Item.OnSelect != nil:
		c.Item.OnSelect(c.Item.Value)
		return true
	default:
		return false
	}
}

// Items returns the wired option items of an open panel, in declaration order.
func (c Composed) Items() []Composed {
	out := make([]Composed, 0, len(c.Children))
	for _, child := range c.Children {
		if child.Item != nil {
			out = append(out, child)
		}
	}
	return out
}
