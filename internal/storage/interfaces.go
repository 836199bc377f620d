package storage

// Model is the in-memory side of a file-backed store.
type Model[T any] interface {
	GetData() map[string]T
	SetData(map[string]T)
}
