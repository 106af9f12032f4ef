// Package bracket finds the partner of the bracket left of the cursor.
//
// A Matcher is a small state machine:
//
//	Idle          no bracket left of the cursor
//	SeekingClose  an opening bracket is known, its partner is not
//	SeekingOpen   a closing bracket is known, its partner is not
//	Matched       both brackets are known
//
// Searches are bounded to the visible line window. A partner that lies
// outside the window is never found and the matcher stays in its seeking
// state until the window moves over it or the cursor moves away.
package bracket
