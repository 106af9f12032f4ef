// Package input turns raw terminal events into the editor's input events.
//
// The editing engine consumes three kinds of event per frame:
//
//   - Key: navigation, editing and command keys with their modifiers
//   - Text: characters to insert, including whole bracketed pastes
//   - Pointer: click, double-click, drag and wheel gestures in pixels
//
// Handler performs the conversion. It groups plain character keys into
// Text events, collects bracketed pastes into a single Text event, and
// feeds mouse reports through a mouse.Tracker to recognise gestures.
//
// # Usage
//
//	h := input.NewHandler(input.DefaultConfig())
//	for {
//	    raw := term.PollEvent()
//	    events = append(events, h.Handle(raw, time.Now())...)
//	}
package input
