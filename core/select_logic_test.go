package core

import "testing"

func roleControl(opts ...SelectOption) *SelectControl {
	return NewSelectControl([]SelectNode{
		TriggerNode(PlaceholderNode("Select role")),
		ContentNode(
			ItemNode("student", "Student"),
			ItemNode("admin", "Admin"),
		),
	}, opts...)
}

func findRole(t *testing.T, composed []Composed, role SelectRole) Composed {
	t.Helper()
	for _, c := range composed {
		if c.Node.Role == role {
			return c
		}
	}
	t.Fatalf("no %s in composition", role)
	return Composed{}
}

func activateTrigger(t *testing.T, c *SelectControl) {
	t.Helper()
	if !findRole(t, c.Compose(), RoleTrigger).Activate() {
		t.Fatalf("trigger was not wired")
	}
}

func activateItem(t *testing.T, c *SelectControl, value string) {
	t.Helper()
	panel := findRole(t, c.Compose(), RoleContentPanel)
	for _, item := range panel.Items() {
		if item.Node.Value == value {
			item.Activate()
			return
		}
	}
	t.Fatalf("item %q not rendered", value)
}

func TestSelectInitialRenderShowsSeededValueAndClosedPanel(t *testing.T) {
	c := roleControl(WithInitialValue("student"))
	composed := c.Compose()

	text, fallback := findRole(t, composed, RoleTrigger).TriggerText()
	if fallback || text != "student" {
		t.Fatalf("trigger text = %q (fallback=%v), want raw value", text, fallback)
	}
	panel := findRole(t, composed, RoleContentPanel)
	if panel.Rendered() || len(panel.Children) != 0 {
		t.Fatalf("closed panel should render nothing, got %d children", len(panel.Children))
	}
}

func TestSelectOpenMarksOnlyMatchingItem(t *testing.T) {
	c := roleControl(WithInitialValue("student"))
	activateTrigger(t, c)
	if !c.State().Open {
		t.Fatalf("expected open after trigger activation")
	}
	items := findRole(t, c.Compose(), RoleContentPanel).Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if !items[0].Item.Selected || items[1].Item.Selected {
		t.Fatalf("selection marks = %v/%v, want student only", items[0].Item.Selected, items[1].Item.Selected)
	}
}

func TestSelectItemCommitClosesAndNotifiesOnce(t *testing.T) {
	var got []string
	c := roleControl(WithInitialValue("student"), WithValueChange(func(v string) { got = append(got, v) }))
	activateTrigger(t, c)
	activateItem(t, c, "admin")

	if len(got) != 1 || got[0] != "admin" {
		t.Fatalf("callback calls = %v, want [admin]", got)
	}
	state := c.State()
	if state.Open || state.Selected != "admin" {
		t.Fatalf("state after commit = %+v", state)
	}
	text, _ := findRole(t, c.Compose(), RoleTrigger).TriggerText()
	if text != "admin" {
		t.Fatalf("trigger text = %q, want admin", text)
	}
}

func TestSelectPlaceholderShownWithoutInitialValue(t *testing.T) {
	c := roleControl()
	text, fallback := findRole(t, c.Compose(), RoleTrigger).TriggerText()
	if !fallback || text != "Select role" {
		t.Fatalf("trigger text = %q (fallback=%v), want placeholder", text, fallback)
	}
}

func TestSelectTriggerAlternatesWithoutCallback(t *testing.T) {
	calls := 0
	c := roleControl(WithInitialValue("admin"), WithValueChange(func(string) { calls++ }))
	for i := 0; i < 7; i++ {
		wantOpen := i%2 == 1
		if c.State().Open != wantOpen {
			t.Fatalf("step %d: open = %v, want %v", i, c.State().Open, wantOpen)
		}
		activateTrigger(t, c)
	}
	if calls != 0 {
		t.Fatalf("toggles fired %d callbacks", calls)
	}
	if c.State().Selected != "admin" {
		t.Fatalf("toggling changed selection to %q", c.State().Selected)
	}
}

func TestSelectCommitFromAnyStateCloses(t *testing.T) {
	c := roleControl()
	activateTrigger(t, c)
	items := findRole(t, c.Compose(), RoleContentPanel).Items()
	activateTrigger(t, c) // closed again, captured callback still routes to the root
	items[1].Activate()
	if st := c.State(); st.Open || st.Selected != "admin" {
		t.Fatalf("state = %+v, want closed with admin", st)
	}
}

func TestSelectPassesUnclassifiedChildrenThrough(t *testing.T) {
	c := NewSelectControl([]SelectNode{
		TextNode("Role"),
		TriggerNode(PlaceholderNode("pick")),
		ItemNode("stray", "Stray"),
		ContentNode(TextNode("-- staff --"), ItemNode("admin", ""), TriggerNode()),
	}, WithInitialValue("admin"))
	composed := c.Compose()
	if len(composed) != 4 {
		t.Fatalf("expected 4 composed children, got %d", len(composed))
	}
	if composed[0].Trigger != nil || composed[0].Content != nil || composed[0].Item != nil {
		t.Fatalf("text node should receive no props")
	}
	if composed[2].Item != nil || composed[2].Activate() {
		t.Fatalf("item outside a panel must stay inert")
	}

	activateTrigger(t, c)
	panel := c.Compose()[3]
	if len(panel.Children) != 3 {
		t.Fatalf("open panel children = %d, want 3", len(panel.Children))
	}
	if panel.Children[0].Item != nil || panel.Children[2].Trigger != nil {
		t.Fatalf("only option items inside a panel are wired")
	}
	if panel.Children[1].Node.Label() != "admin" || !panel.Children[1].Item.Selected {
		t.Fatalf("unlabelled item should show its value and be selected")
	}
}

func TestSelectDuplicateValuesMarkFirstOnly(t *testing.T) {
	c := NewSelectControl([]SelectNode{
		TriggerNode(),
		ContentNode(ItemNode("a", "A"), ItemNode("a", "A again"), ItemNode("b", "B")),
	}, WithInitialValue("a"))
	activateTrigger(t, c)
	marked := 0
	for _, item := range c.Compose()[1].Items() {
		if item.Item.Selected {
			marked++
		}
	}
	if marked != 1 {
		t.Fatalf("marked %d items, want 1", marked)
	}
}

func TestSelectMultiplePanelsShareProps(t *testing.T) {
	var got []string
	c := NewSelectControl([]SelectNode{
		TriggerNode(),
		ContentNode(ItemNode("x", "X")),
		ContentNode(ItemNode("y", "Y"), ItemNode("x", "X")),
	}, WithValueChange(func(v string) { got = append(got, v) }))
	activateTrigger(t, c)
	composed := c.Compose()
	if !composed[1].Content.Open || !composed[2].Content.Open {
		t.Fatalf("both panels should be open")
	}
	composed[2].Items()[0].Activate()
	if len(got) != 1 || got[0] != "y" {
		t.Fatalf("callback calls = %v", got)
	}
	if c.State().Open {
		t.Fatalf("commit from second panel should close the control")
	}
}

func TestSelectNoMatchMarksNothing(t *testing.T) {
	c := roleControl(WithInitialValue("guest"))
	activateTrigger(t, c)
	for _, item := range findRole(t, c.Compose(), RoleContentPanel).Items() {
		if item.Item.Selected {
			t.Fatalf("item %q marked without a matching value", item.Node.Value)
		}
	}
	text, fallback := findRole(t, c.Compose(), RoleTrigger).TriggerText()
	if fallback || text != "guest" {
		t.Fatalf("trigger should still show the raw stored value, got %q", text)
	}
}

func TestSelectEmptyValueItemIsNotMarkedWhileUnset(t *testing.T) {
	var got []string
	c := NewSelectControl([]SelectNode{
		TriggerNode(PlaceholderNode("P")),
		ContentNode(ItemNode("", "None"), ItemNode("admin", "Admin")),
	}, WithValueChange(func(v string) { got = append(got, v) }))
	activateTrigger(t, c)
	for _, item := range findRole(t, c.Compose(), RoleContentPanel).Items() {
		if item.Item.Selected {
			t.Fatalf("item %q marked with nothing selected", item.Node.Value)
		}
	}

	activateItem(t, c, "")
	if len(got) != 1 || got[0] != "" {
		t.Fatalf("callback calls = %q", got)
	}
	if st := c.State(); st.Open || st.Selected != "" {
		t.Fatalf("state = %+v", st)
	}
	activateTrigger(t, c)
	for _, item := range findRole(t, c.Compose(), RoleContentPanel).Items() {
		if item.Item.Selected {
			t.Fatalf("item %q marked after committing the empty value", item.Node.Value)
		}
	}
}

func TestSelectChildrenAreCopied(t *testing.T) {
	children := []SelectNode{TriggerNode(PlaceholderNode("pick")), ContentNode(ItemNode("a", "A"))}
	c := NewSelectControl(children)
	children[1].Children[0].Value = "mutated"
	if got := c.Children()[1].Children[0].Value; got != "a" {
		t.Fatalf("control children changed through caller slice: %q", got)
	}
}
