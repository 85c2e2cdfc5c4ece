// Package model holds values shared between controllers and views.
//
// Views poll their models for dirty state instead of being notified.
// A model becomes dirty on every update and stays dirty until whoever
// consumed the change calls Reset. Nothing clears the flag implicitly.
// Several updates between two resets collapse into a single dirty
// signal; the value always reflects the most recent commit.
package model

// Model is a dirty-tracked value.
type Model[T any] interface {
	Update(value T)
	Value() T
	Dirty() bool
	Reset()
}

// flag is the dirty bit shared by every variant.
type flag struct {
	dirty bool
}

func (f *flag) Dirty() bool {
	return f.dirty
}

func (f *flag) Reset() {
	f.dirty = false
}

func (f *flag) mark() {
	f.dirty = true
}

// Direct owns its value and commits updates synchronously.
type Direct[T any] struct {
	flag
	value T
}

// NewDirect returns a clean model holding initial.
func NewDirect[T any](initial T) *Direct[T] {
	return &Direct[T]{value: initial}
}

func (m *Direct[T]) Update(value T) {
	m.value = value
	m.mark()
}

func (m *Direct[T]) Value() T {
	return m.value
}

// Ref commits updates synchronously into a variable owned elsewhere.
type Ref[T any] struct {
	flag
	ref *T
}

// NewRef returns a clean model backed by *ref.
func NewRef[T any](ref *T) *Ref[T] {
	return &Ref[T]{ref: ref}
}

func (m *Ref[T]) Update(value T) {
	*m.ref = value
	m.mark()
}

func (m *Ref[T]) Value() T {
	return *m.ref
}

// CommitFunc forwards a requested value to whatever owns the real state.
// It must eventually call p.Set to finalize the update, either before
// returning or later from another control path.
type CommitFunc[T any] func(p *Proxy[T], value T)

// Proxy caches a value whose commits are driven externally.
type Proxy[T any] struct {
	flag
	commit CommitFunc[T]
	cache  T
}

// NewProxy creates a proxy with a cached initial value and forwards that
// value through commit once so the external owner starts in sync.
func NewProxy[T any](commit CommitFunc[T], initial T) *Proxy[T] {
	p := &Proxy[T]{
		commit: commit,
		cache:  initial,
	}
	if commit != nil {
		commit(p, initial)
	}
	return p
}

// Update requests a new value. The cache only changes once the commit
// path calls Set.
func (p *Proxy[T]) Update(value T) {
	if p.commit == nil {
		p.Set(value)
		return
	}
	p.commit(p, value)
}

// Set stores a committed value and marks the model dirty.
func (p *Proxy[T]) Set(value T) {
	p.cache = value
	p.mark()
}

func (p *Proxy[T]) Value() T {
	return p.cache
}
