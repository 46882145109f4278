package fsops

// Deleter abstracts the filesystem removals performed by a purge.
// Tests swap it out to record calls or inject failures.
type Deleter interface {
	Remove(path string) error
	RemoveAll(path string) error
}
