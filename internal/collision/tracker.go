package collision

import "github.com/arloliu/dosecurve/internal/hash"

// Tracker assigns candidate IDs to equation labels and detects hash collisions.
//
// Repeating the same label is not a collision: the first occurrence owns the
// ID. Two different labels hashing to the same ID mark that ID as ambiguous.
type Tracker struct {
	labels   map[uint64]string // ID → first label seen
	collided map[uint64]bool   // IDs shared by different labels
	order    []string          // distinct labels in tracking order
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		labels:   make(map[uint64]string),
		collided: make(map[uint64]bool),
		order:    make([]string, 0),
	}
}

// Track records an equation label and returns its ID.
func (t *Tracker) Track(label string) uint64 {
	id := hash.EquationID(label)

	existing, exists := t.labels[id]
	switch {
	case !exists:
		t.labels[id] = label
		t.order = append(t.order, label)
	case !sameLabel(existing, label):
		t.collided[id] = true
	}

	return id
}

// Collides reports whether the ID is shared by different labels.
func (t *Tracker) Collides(id uint64) bool {
	return t.collided[id]
}

// HasCollision returns true if any collision has been detected.
func (t *Tracker) HasCollision() bool {
	return len(t.collided) > 0
}

// Label returns the first label tracked under the ID.
func (t *Tracker) Label(id uint64) (string, bool) {
	label, ok := t.labels[id]
	return label, ok
}

// Labels returns the distinct labels in tracking order.
func (t *Tracker) Labels() []string {
	return t.order
}

// Count returns the number of distinct tracked labels.
func (t *Tracker) Count() int {
	return len(t.order)
}

// Reset clears all tracked labels and collision state.
func (t *Tracker) Reset() {
	clear(t.labels)
	clear(t.collided)
	t.order = t.order[:0]
}

func sameLabel(a, b string) bool {
	return hash.Normalize(a) == hash.Normalize(b)
}
