package state

// Load is the state effect for reading a key.
// It is resumed with Loaded.
type Load struct {
	Key string
}

// Loaded is the resumption value of Load.
type Loaded struct {
	Value any
	Found bool
}

// Store is the write-only state effect for inserting or replacing a key.
type Store struct {
	Key   string
	Value any
}

// Delete is the write-only state effect for removing a key.
type Delete struct {
	Key string
}

// CompareAndSwap is the state effect for replacing the value of a key only if
// it currently equals Old. It is resumed with a bool reporting whether the swap happened.
// A nil Old matches an absent key.
type CompareAndSwap struct {
	Key string
	Old any
	New any
}

// Equatable lets values define their own equality for CompareAndSwap.
type Equatable interface {
	Equals(other any) bool
}

// Repo is the storage behind the state effects.
type Repo interface {
	Load(key string) (value any, ok bool, err error)
	Store(key string, value any) error
	Delete(key string) error
	CompareAndSwap(key string, old, new any) (swapped bool, err error)
}
