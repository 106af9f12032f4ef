package app

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard stores copied text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// SystemClipboard uses the operating system clipboard. When no clipboard
// utility is available it keeps the text in memory instead.
type SystemClipboard struct {
	fallback MemoryClipboard
}

// NewSystemClipboard creates a system clipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// Available reports whether the system clipboard can be used.
func (c *SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}

// ReadText returns the clipboard content.
func (c *SystemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return c.fallback.ReadText()
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", NewComponentError("clipboard", "read", err)
	}
	return text, nil
}

// WriteText replaces the clipboard content.
func (c *SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return c.fallback.WriteText(text)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return NewComponentError("clipboard", "write", err)
	}
	return nil
}

// MemoryClipboard is a process-local clipboard.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// ReadText returns the stored text.
func (c *MemoryClipboard) ReadText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

// WriteText stores text.
func (c *MemoryClipboard) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}
