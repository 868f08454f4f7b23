package obis

// Descriptor binds an ID to what it measures.
type Descriptor struct {
	ID          ID
	Description string
	Unit        Unit
	// Factor scales decoded numbers. Zero means 1.
	Factor float64
}

// Scale returns the factor decoded values are multiplied by.
func (d Descriptor) Scale() float64 {
	if d.Factor == 0 {
		return 1
	}
	return d.Factor
}

func (d Descriptor) String() string {
	return d.ID.String() + " (" + d.Description + ")"
}

// Registry resolves the descriptor of an ID.
type Registry interface {
	Lookup(id ID) (Descriptor, bool)
}

// Table is a read-only Registry built once from a fixed list.
type Table map[ID]Descriptor

// NewTable indexes descriptors by ID. Later entries replace earlier ones with the same ID.
func NewTable(descriptors ...Descriptor) Table {
	table := make(Table, len(descriptors))
	for _, d := range descriptors {
		table[d.ID] = d
	}
	return table
}

func (t Table) Lookup(id ID) (Descriptor, bool) {
	d, ok := t[id]
	return d, ok
}

// Describe looks id up in the registries in order and returns the first hit.
func Describe(id ID, registries ...Registry) (Descriptor, bool) {
	for _, r := range registries {
		if d, ok := r.Lookup(id); ok {
			return d, true
		}
	}
	return Descriptor{ID: id, Description: "UNKNOWN"}, false
}
