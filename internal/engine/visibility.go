package engine

// Field is an optional row of the card view.
type Field int

const (
	FieldPronunciation Field = iota
	FieldDescription
	FieldExample
	FieldTitle
	FieldHints

	fieldCount
)

var fieldNames = [fieldCount]string{
	FieldPronunciation: "pronunciation",
	FieldDescription:   "description",
	FieldExample:       "example",
	FieldTitle:         "title",
	FieldHints:         "hints",
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

// onCard reports whether the field shows content of the card itself.
// Such fields are hidden and frozen while the card is reversed.
func (f Field) onCard() bool {
	return f == FieldPronunciation || f == FieldDescription || f == FieldExample
}

// Visibility holds the row toggles plus zen mode and the reversed flag.
//
// Zen mode is an overlay: it hides every optional row without touching the
// stored toggles. Toggling a row while in zen mode leaves zen and makes that
// row the only visible one.
type Visibility struct {
	flags    [fieldCount]bool
	zen      bool
	reversed bool
}

// NewVisibility returns the initial state: pronunciation, title and hints on,
// description and example off, zen off, front side up.
func NewVisibility() Visibility {
	var v Visibility
	v.flags[FieldPronunciation] = true
	v.flags[FieldTitle] = true
	v.flags[FieldHints] = true
	return v
}

// Toggle flips one row according to the zen and reversed rules
func (v *Visibility) Toggle(f Field) {
	if f < 0 || f >= fieldCount {
		return
	}
	if f.onCard() && v.reversed {
		return
	}
	if v.zen {
		v.flags = [fieldCount]bool{}
		v.zen = false
		v.flags[f] = true
		return
	}
	v.flags[f] = !v.flags[f]
}

// ToggleZen enters or leaves zen mode, stored toggles are untouched
func (v *Visibility) ToggleZen() {
	v.zen = !v.zen
}

// Reverse flips the card side
func (v *Visibility) Reverse() {
	v.reversed = !v.reversed
}

// Shown reports whether a row is displayed right now
func (v Visibility) Shown(f Field) bool {
	if f < 0 || f >= fieldCount || v.zen {
		return false
	}
	if f.onCard() && v.reversed {
		return false
	}
	return v.flags[f]
}

// Stored returns the toggle value regardless of zen and reversed
func (v Visibility) Stored(f Field) bool {
	if f < 0 || f >= fieldCount {
		return false
	}
	return v.flags[f]
}

func (v Visibility) Zen() bool {
	return v.zen
}

func (v Visibility) Reversed() bool {
	return v.reversed
}
