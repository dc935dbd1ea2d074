package ports

// Hasher computes content hashes.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Hasher interface {
	// ComputeFileHash returns the hash of the file's content and the number of
	// bytes hashed. It blocks on I/O.
	ComputeFileHash(path string) (uint64, int64, error)
}
