package selection

import (
	"reflect"
	"testing"

	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/engine/cursor"
)

func newTestModel(lines ...string) (*Model, *buffer.Buffer, *cursor.Cursor) {
	buf := buffer.NewFromLines(lines)
	cur := cursor.New(buf)
	return New(buf, cur), buf, cur
}

func TestDragNormalizes(t *testing.T) {
	tests := []struct {
		name        string
		anchor, end Position
		wantStart   Position
		wantEnd     Position
	}{
		{"forward", buffer.Pos(0, 1), buffer.Pos(1, 2), buffer.Pos(0, 1), buffer.Pos(1, 2)},
		{"bottom to top", buffer.Pos(2, 0), buffer.Pos(0, 3), buffer.Pos(0, 3), buffer.Pos(2, 0)},
		{"right to left", buffer.Pos(1, 4), buffer.Pos(1, 1), buffer.Pos(1, 1), buffer.Pos(1, 4)},
		{"clamped", buffer.Pos(0, 0), buffer.Pos(9, 9), buffer.Pos(0, 0), buffer.Pos(2, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestModel("hello", "world", "again")
			m.BeginDrag(tt.anchor)
			m.UpdateDrag(tt.end)

			r, ok := m.Range()
			if !ok {
				t.Fatal("expected selection")
			}
			if r.Start != tt.wantStart || r.End != tt.wantEnd {
				t.Errorf("Range() = %s, want [%s-%s)", r, tt.wantStart, tt.wantEnd)
			}
			if r.End.Before(r.Start) {
				t.Error("start must not be after end")
			}
		})
	}
}

func TestDragDirectionSymmetric(t *testing.T) {
	a, b := buffer.Pos(2, 1), buffer.Pos(0, 4)

	m1, _, _ := newTestModel("hello", "world", "again")
	m1.BeginDrag(b)
	m1.UpdateDrag(a)

	m2, _, _ := newTestModel("hello", "world", "again")
	m2.BeginDrag(a)
	m2.UpdateDrag(b)

	r1, _ := m1.Range()
	r2, _ := m2.Range()
	if r1 != r2 {
		t.Errorf("selections differ: %s vs %s", r1, r2)
	}
}

func TestUpdateDragWithoutAnchor(t *testing.T) {
	m, _, _ := newTestModel("abc")
	m.UpdateDrag(buffer.Pos(0, 2))

	if m.HasSelection() {
		t.Error("no selection expected without an anchor")
	}
}

func TestEndDragKeepsSelection(t *testing.T) {
	m, _, _ := newTestModel("abc")
	m.BeginDrag(buffer.Pos(0, 0))
	m.UpdateDrag(buffer.Pos(0, 2))
	m.EndDrag()

	if m.HasAnchor() {
		t.Error("anchor should be cleared")
	}
	if !m.HasSelection() {
		t.Error("selection should survive drag end")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r    buffer.Range
		want Kind
	}{
		{buffer.NewRange(buffer.Pos(0, 0), buffer.Pos(0, 3)), KindSingleLine},
		{buffer.NewRange(buffer.Pos(1, 0), buffer.Pos(2, 3)), KindAdjacentLines},
		{buffer.NewRange(buffer.Pos(0, 2), buffer.Pos(3, 0)), KindMultiLine},
	}
	for _, tt := range tests {
		if got := Classify(tt.r); got != tt.want {
			t.Errorf("Classify(%s) = %s, want %s", tt.r, got, tt.want)
		}
	}
}

func TestReplaceSingleLine(t *testing.T) {
	m, buf, cur := newTestModel("hello world")
	m.BeginDrag(buffer.Pos(0, 0))
	m.UpdateDrag(buffer.Pos(0, 5))

	edit, ok := m.Replace("hi")
	if !ok {
		t.Fatal("expected replacement")
	}

	if buf.Line(0) != "hi world" {
		t.Errorf("expected %q, got %q", "hi world", buf.Line(0))
	}
	if cur.Position() != buffer.Pos(0, 2) {
		t.Errorf("cursor = %s, want (0:2)", cur.Position())
	}
	if m.HasSelection() || m.HasAnchor() {
		t.Error("selection state should be cleared")
	}
	if !reflect.DeepEqual(edit.Removed, []string{"hello"}) || edit.Inserted != "hi" {
		t.Errorf("edit = %+v", edit)
	}
}

func TestReplaceAdjacentAndMulti(t *testing.T) {
	tests := []struct {
		name       string
		start, end Position
		want       []string
	}{
		{"adjacent", buffer.Pos(0, 2), buffer.Pos(1, 1), []string{"ab_ef", "ghi", "jkl"}},
		{"multi", buffer.Pos(0, 1), buffer.Pos(3, 2), []string{"a_l"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, buf, cur := newTestModel("abc", "def", "ghi", "jkl")
			m.Set(buffer.Range{Start: tt.start, End: tt.end})

			if _, ok := m.Replace("_"); !ok {
				t.Fatal("expected replacement")
			}
			if got := buf.Lines(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines() = %q, want %q", got, tt.want)
			}
			want := buffer.Pos(tt.start.Line, tt.start.Char+1)
			if cur.Position() != want {
				t.Errorf("cursor = %s, want %s", cur.Position(), want)
			}
		})
	}
}

func TestReplaceTwiceIsNoOp(t *testing.T) {
	m, buf, _ := newTestModel("hello world")
	m.Set(buffer.NewRange(buffer.Pos(0, 0), buffer.Pos(0, 6)))

	m.Replace("")
	after := buf.Lines()

	if _, ok := m.Replace(""); ok {
		t.Error("second replace should report no selection")
	}
	if !reflect.DeepEqual(buf.Lines(), after) {
		t.Error("second replace should not change the buffer")
	}
}

func TestSelectAll(t *testing.T) {
	m, _, cur := newTestModel("ab", "cde")
	m.SelectAll()

	r, ok := m.Range()
	if !ok || r.Start != buffer.Pos(0, 0) || r.End != buffer.Pos(1, 3) {
		t.Errorf("Range() = %s, %v", r, ok)
	}
	if cur.Position() != buffer.Pos(1, 3) {
		t.Errorf("cursor = %s", cur.Position())
	}
	if m.Text() != "ab\ncde" {
		t.Errorf("Text() = %q", m.Text())
	}
}

func TestResetClearsWord(t *testing.T) {
	m, _, _ := newTestModel("foo bar")
	m.SelectWordAt(buffer.Pos(0, 1))

	if m.HighlightedWord() != "foo" {
		t.Fatalf("HighlightedWord() = %q", m.HighlightedWord())
	}

	m.Reset()
	if m.HighlightedWord() != "" || m.HasSelection() {
		t.Error("Reset should clear selection and word together")
	}
}
