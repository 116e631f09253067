package testutil

// Point is a plain comparable value type with no capabilities attached.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Note carries an internal buffer so tests can observe reset-in-place:
// Reset truncates the tag slice instead of dropping it, keeping capacity.
type Note struct {
	Text string
	Tags []string

	// Resets counts Reset calls so tests can assert the reset path was taken.
	Resets int
}

// Reset clears the note's contents in place, retaining slice capacity.
func (n *Note) Reset() {
	n.Text = ""
	n.Tags = n.Tags[:0]
	n.Resets++
}

// Blob owns a byte slice and supplies deep-copy logic, letting tests verify
// that cloning a container isolates the clone from the original.
type Blob struct {
	Data []byte
}

// Clone returns a deep copy of the blob.
func (b Blob) Clone() Blob {
	data := make([]byte, len(b.Data))
	copy(data, b.Data)
	return Blob{Data: data}
}

// Tracked records teardown attempts so tests can prove Clear never runs
// the contained value's teardown logic.
type Tracked struct {
	Name string

	// Closed flips when Close is called; Clear must leave it untouched.
	Closed bool
}

// Close marks the value as torn down.
func (t *Tracked) Close() { t.Closed = true }
