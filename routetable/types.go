package routetable

// MinRouteID and MaxRouteID bound the valid numbered-route range.
const (
	MinRouteID = 1
	MaxRouteID = 999
)

// Table is a fixed vector of MaxRouteID slots indexed 1..=MaxRouteID. The
// zero value is ready to use.
type Table struct {
	slots [MaxRouteID + 1][]int // slots[0] is unused; nil slice means Absent
}

// New returns an empty Table.
func New() *Table {
	return &Table{}
}

func validID(id int) error {
	if id < MinRouteID || id > MaxRouteID {
		return ErrBadRouteID
	}
	return nil
}

// IsPresent reports whether id names an occupied slot. An out-of-range id
// is reported as absent rather than erroring, so read-only lookups never
// need to special-case a bad id.
func (t *Table) IsPresent(id int) bool {
	if validID(id) != nil {
		return false
	}
	return t.slots[id] != nil
}

// Get returns the city sequence stored at id, and whether it is present.
// The returned slice is owned by the table; callers must not mutate it.
func (t *Table) Get(id int) ([]int, bool) {
	if validID(id) != nil {
		return nil, false
	}
	seq := t.slots[id]
	return seq, seq != nil
}

// Set installs seq at id. It fails with ErrBadRouteID if id is out of
// range, or ErrRoutePresent if the slot is already occupied.
func (t *Table) Set(id int, seq []int) error {
	if err := validID(id); err != nil {
		return err
	}
	if t.slots[id] != nil {
		return ErrRoutePresent
	}
	t.slots[id] = append([]int(nil), seq...)
	return nil
}

// Replace overwrites the sequence at an already-present id (used by
// extendRoute/removeRoad to patch an existing route in place).
func (t *Table) Replace(id int, seq []int) error {
	if err := validID(id); err != nil {
		return err
	}
	if t.slots[id] == nil {
		return ErrRouteAbsent
	}
	t.slots[id] = append([]int(nil), seq...)
	return nil
}

// Clear empties the slot at id.
func (t *Table) Clear(id int) error {
	if err := validID(id); err != nil {
		return err
	}
	if t.slots[id] == nil {
		return ErrRouteAbsent
	}
	t.slots[id] = nil
	return nil
}
