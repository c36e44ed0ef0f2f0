package ui

// Field is an observable value. Observers run synchronously inside Set, in
// the order they subscribed.
type Field[T any] struct {
	value     T
	observers []observer[T]
	nextID    int
}

type observer[T any] struct {
	id int
	fn func(T)
}

func NewField[T any](value T) *Field[T] {
	return &Field[T]{value: value}
}

func (f *Field[T]) Value() T {
	return f.value
}

// Set stores v and notifies every observer, even when v equals the current
// value.
func (f *Field[T]) Set(v T) {
	f.value = v
	observers := make([]observer[T], len(f.observers))
	copy(observers, f.observers)
	for _, o := range observers {
		o.fn(v)
	}
}

// Subscribe registers fn for future changes and returns a func that removes
// it again.
func (f *Field[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	id := f.nextID
	f.nextID++
	f.observers = append(f.observers, observer[T]{id: id, fn: fn})
	return func() {
		for i, o := range f.observers {
			if o.id == id {
				f.observers = append(f.observers[:i], f.observers[i+1:]...)
				return
			}
		}
	}
}

func (f *Field[T]) Observers() int {
	return len(f.observers)
}
