package domain

// File represents an object listed from the store
type File struct {
	Key  string
	Size int64
}
