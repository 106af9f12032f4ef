// Package key provides key event types and parsing for the input system.
//
//   - Key: identifies a keyboard key (navigation and editing keys, or runes)
//   - Modifier: modifier keys held with the key (Ctrl, Alt, Shift, Meta)
//   - Event: a single key press with its modifiers
//
// Key specifications such as "Ctrl+S", "Shift+Left" or "Enter" can be
// parsed with Parse and compared against incoming events with Matches.
package key
