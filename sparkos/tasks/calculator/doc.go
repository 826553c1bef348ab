// Package calculator implements the calculator screen: a keypad model, keyboard and pointer
// input mapping, and framebuffer rendering of the engine snapshot.
package calculator
