package core

import "strings"

// SelectRole tells a select control what, if anything, to inject into a child.
type SelectRole uint8

const (
	RoleUnclassified SelectRole = iota
	RoleTrigger
	RoleContentPanel
	RoleOptionItem
	RolePlaceholder
)

func (r SelectRole) String() string {
	switch r {
	case RoleTrigger:
		return "trigger"
	case RoleContentPanel:
		return "content"
	case RoleOptionItem:
		return "item"
	case RolePlaceholder:
		return "placeholder"
	default:
		return "unclassified"
	}
}

// SelectNode describes one declared child of a select control. The role is
// set by the constructor that built the node and never changes afterwards.
type SelectNode struct {
	Role     SelectRole
	Value    string
	Text     string
	Children []SelectNode
}

// TriggerNode declares the always-visible affordance. The fallback nodes are
// shown while nothing is selected.
func TriggerNode(fallback ...SelectNode) SelectNode {
	return SelectNode{Role: RoleTrigger, Children: cloneNodes(fallback)}
}

// ContentNode declares the panel that lists option items while open.
func ContentNode(children ...SelectNode) SelectNode {
	return SelectNode{Role: RoleContentPanel, Children: cloneNodes(children)}
}

// ItemNode declares one selectable value. An empty label falls back to the value.
func ItemNode(value, label string) SelectNode {
	return SelectNode{Role: RoleOptionItem, Value: value, Text: label}
}

func PlaceholderNode(text string) SelectNode {
	return SelectNode{Role: RolePlaceholder, Text: text}
}

// TextNode declares static content the control never injects into.
func TextNode(text string) SelectNode {
	return SelectNode{Role: RoleUnclassified, Text: text}
}

func (n SelectNode) Label() string {
	if strings.TrimSpace(n.Text) == "" {
		return n.Value
	}
	return n.Text
}

// PlainText flattens the node's own text and its descendants' text in order.
func (n SelectNode) PlainText() string {
	parts := make([]string, 0, len(n.Children)+1)
	if t := strings.TrimSpace(n.Text); t != "" {
		parts = append(parts, t)
	}
	for _, child := range n.Children {
		if t := child.PlainText(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

func cloneNodes(nodes []SelectNode) []SelectNode {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]SelectNode, len(nodes))
	for i, n := range nodes {
		out[i] = SelectNode{Role: n.Role, Value: n.Value, Text: n.Text, Children: cloneNodes(n.Children)}
	}
	return out
}
