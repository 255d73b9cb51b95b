// Package widgets holds render primitives: pane chrome, the horizontal
// stack, tables, bar charts, the select box and the popup compositor.
//
// Everything here draws from the values it is handed. Key handling, focus
// and data loading belong to tabs and core.
package widgets
