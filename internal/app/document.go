package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/google/uuid"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// Document is the file backing the editor.
type Document struct {
	// ID identifies the document in logs.
	ID uuid.UUID

	// Path is the absolute file path (empty for scratch buffers).
	Path string

	// Name is the display name (filename or "Untitled").
	Name string

	// LineEnding is the terminator found in the file, used when saving.
	LineEnding buffer.LineEnding

	// saved is the content last read from or written to disk.
	saved string
}

// NewScratchDocument creates a new scratch (unsaved) document.
func NewScratchDocument() *Document {
	return &Document{
		ID:   uuid.New(),
		Name: "Untitled",
	}
}

// OpenDocument reads the file at path. A missing file yields an empty
// document that will be created on first save.
func OpenDocument(path string) (*Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	doc := &Document{
		ID:   uuid.New(),
		Path: absPath,
		Name: filepath.Base(absPath),
	}

	data, err := os.ReadFile(absPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return doc, nil
	case err != nil:
		return nil, NewOperationError("open", absPath, err)
	}

	doc.saved = string(data)
	doc.LineEnding = buffer.DetectLineEnding(doc.saved)
	return doc, nil
}

// IsScratch returns true if this is a scratch buffer (no file path).
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// Content returns the content last read from or written to disk, with
// "\n" line terminators.
func (d *Document) Content() string {
	return normalizeNewlines(d.saved)
}

// IsModified reports whether text, joined with the document's line
// ending, differs from the saved content.
func (d *Document) IsModified(text string) bool {
	return text != d.saved
}

// ChangeSummary counts the lines that differ between two versions.
type ChangeSummary struct {
	Added   int
	Removed int
}

// IsZero reports whether nothing changed.
func (s ChangeSummary) IsZero() bool {
	return s.Added == 0 && s.Removed == 0
}

// Save writes text to the document's file and returns the line changes
// relative to the previous saved content.
func (d *Document) Save(text string) (ChangeSummary, error) {
	if d.IsScratch() {
		return ChangeSummary{}, NewOperationError("save", d.Name, ErrNoPath)
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(d.Path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(d.Path, []byte(text), mode); err != nil {
		return ChangeSummary{}, NewOperationError("save", d.Path, err)
	}

	summary := DiffLines(d.saved, text)
	d.saved = text
	return summary, nil
}

// DiffLines counts added and removed lines between before and after.
func DiffLines(before, after string) ChangeSummary {
	if before == after {
		return ChangeSummary{}
	}

	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	var s ChangeSummary
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			s.Added += countLines(df.Text)
		case dmp.DiffDelete:
			s.Removed += countLines(df.Text)
		}
	}
	return s
}

// countLines counts text lines, including a final line without newline.
func countLines(s string) int {
	n := strings.Count(s, "\n")
	if s != "" && !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
