package core

// Releaser is a GPU object with an explicit end of life.
type Releaser interface {
	Release()
}

// Resources is the lifetime scope for GPU objects. Everything tracked is
// released in reverse order of tracking, before the context goes away.
type Resources struct {
	items []Releaser
}

// Track adds r to the scope and returns it for chaining.
func (rs *Resources) Track(r Releaser) Releaser {
	rs.items = append(rs.items, r)
	return r
}

// Len returns the number of live tracked objects.
func (rs *Resources) Len() int { return len(rs.items) }

// Release releases every tracked object, newest first, and empties the scope.
func (rs *Resources) Release() {
	for i := len(rs.items) - 1; i >= 0; i-- {
		rs.items[i].Release()
	}
	rs.items = nil
}
