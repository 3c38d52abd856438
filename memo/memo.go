// Package memo provides memoized wrappers around pure functions. Results are
// cached by argument, so repeated calls with the same arguments return the
// cached value without re-invoking the function.
//
// Wrappers are not safe for concurrent use; guard calls with your own
// synchronization if needed.
package memo

// Func memoizes a single-argument function.
type Func[K comparable, V any] struct {
	fn    func(K) V
	cache map[K]V
}

// New returns a memoized wrapper around fn.
func New[K comparable, V any](fn func(K) V) *Func[K, V] {
	if fn == nil {
		panic("memo: fn cannot be nil")
	}
	return &Func[K, V]{
		fn:    fn,
		cache: make(map[K]V),
	}
}

// Call returns the cached result for arg, invoking the wrapped function on
// the first call with that argument.
func (f *Func[K, V]) Call(arg K) V {
	if value, ok := f.cache[arg]; ok {
		return value
	}

	value := f.fn(arg)
	f.cache[arg] = value
	return value
}

// Len returns the number of cached results.
func (f *Func[K, V]) Len() int {
	return len(f.cache)
}

// Clear discards all cached results.
func (f *Func[K, V]) Clear() {
	clear(f.cache)
}

type pair[A, B comparable] struct {
	a A
	b B
}

// Func2 memoizes a two-argument function.
type Func2[A, B comparable, V any] struct {
	fn    func(A, B) V
	cache map[pair[A, B]]V
}

// New2 returns a memoized wrapper around fn.
func New2[A, B comparable, V any](fn func(A, B) V) *Func2[A, B, V] {
	if fn == nil {
		panic("memo: fn cannot be nil")
	}
	return &Func2[A, B, V]{
		fn:    fn,
		cache: make(map[pair[A, B]]V),
	}
}

// Call returns the cached result for (a, b), invoking the wrapped function on
// the first call with those arguments.
func (f *Func2[A, B, V]) Call(a A, b B) V {
	key := pair[A, B]{a, b}
	if value, ok := f.cache[key]; ok {
		return value
	}

	value := f.fn(a, b)
	f.cache[key] = value
	return value
}

// Len returns the number of cached results.
func (f *Func2[A, B, V]) Len() int {
	return len(f.cache)
}

// Clear discards all cached results.
func (f *Func2[A, B, V]) Clear() {
	clear(f.cache)
}
