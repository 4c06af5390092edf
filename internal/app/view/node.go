// Package view is the display tree produced by the controller's renderer.
//
// A tree is plain data. Interactive nodes (buttons, toggles, list items)
// carry the value they emit when activated in OnPress, so any host can
// dispatch it: the terminal host through key bindings, the WebSocket host by
// node ID.
package view

// Kind identifies a node type.
type Kind string

const (
	KindColumn Kind = "column"
	KindRow    Kind = "row"
	KindText   Kind = "text"
	KindButton Kind = "button"
	KindToggle Kind = "toggle"
	KindList   Kind = "list"
	KindItem   Kind = "item"
	KindSpacer Kind = "spacer"
	KindNotice Kind = "notice"
	KindInput  Kind = "input"
)

// Style is a rendering hint. Hosts map it to their own palette.
type Style string

const (
	StyleNone    Style = ""
	StyleTitle   Style = "title"
	StyleMuted   Style = "muted"
	StyleError   Style = "error"
	StyleWarning Style = "warning"
	StyleActive  Style = "active"
	StyleInfo    Style = "info"
)

// Node is one element of the display tree.
type Node struct {
	Kind     Kind   `json:"kind"`
	ID       string `json:"id,omitempty"`
	Text     string `json:"text,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Style    Style  `json:"style,omitempty"`
	Checked  bool   `json:"checked,omitempty"`
	Cursor   bool   `json:"cursor,omitempty"`
	Children []Node `json:"children,omitempty"`

	// OnPress is emitted when the node is activated. Not serialised.
	OnPress any `json:"-"`
}

// Column stacks children vertically.
func Column(children ...Node) Node {
	return Node{Kind: KindColumn, Children: children}
}

// Row lays children out horizontally.
func Row(children ...Node) Node {
	return Node{Kind: KindRow, Children: children}
}

// Text is a static label.
func Text(s string) Node {
	return Node{Kind: KindText, Text: s}
}

// Styled is a static label with a style hint.
func Styled(style Style, s string) Node {
	return Node{Kind: KindText, Text: s, Style: style}
}

// Button emits onPress when activated.
func Button(id, label string, onPress any) Node {
	return Node{Kind: KindButton, ID: id, Text: label, OnPress: onPress}
}

// Toggle is a labelled on/off switch.
func Toggle(id, label string, checked bool, onPress any) Node {
	return Node{Kind: KindToggle, ID: id, Text: label, Checked: checked, OnPress: onPress}
}

// List holds Item children.
func List(id string, items ...Node) Node {
	return Node{Kind: KindList, ID: id, Children: items}
}

// Item is a selectable list row.
func Item(id, text, detail string, checked, cursor bool, onPress any) Node {
	return Node{Kind: KindItem, ID: id, Text: text, Detail: detail, Checked: checked, Cursor: cursor, OnPress: onPress}
}

// Spacer takes the remaining width of a row.
func Spacer() Node {
	return Node{Kind: KindSpacer}
}

// Notice is a highlighted message box.
func Notice(style Style, s string) Node {
	return Node{Kind: KindNotice, Style: style, Text: s}
}

// Input shows an editable value. Hosts own the editing.
func Input(id, placeholder, value string) Node {
	return Node{Kind: KindInput, ID: id, Text: value, Detail: placeholder}
}

// WithStyle returns a copy of n with style set.
func (n Node) WithStyle(style Style) Node {
	n.Style = style
	return n
}
