package set

// StringSet is a lightweight set implementation for strings, used for
// allow-list and membership checks in the query layer. Same ordering
// guarantee's as Go's map type.
type StringSet map[string]bool

func NewStringSet(values ...string) StringSet {
	ss := make(StringSet, len(values))
	for _, value := range values {
		ss.Add(value)
	}
	return ss
}

func (ss StringSet) Add(v string) StringSet {
	ss[v] = true
	return ss
}

// Values returns the members, unordered.
func (ss StringSet) Values() []string {
	values := make([]string, 0, len(ss))
	for v := range ss {
		values = append(values, v)
	}
	return values
}
