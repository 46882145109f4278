package purge

import "fmt"

// ListError is returned when a directory cannot be read.
type ListError struct {
	Dir string
	Err error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("listing folder %q: %v", e.Dir, e.Err)
}

func (e *ListError) Unwrap() error { return e.Err }

// RemoveError is returned when a matched entry cannot be deleted.
type RemoveError struct {
	Path  string
	IsDir bool
	Err   error
}

func (e *RemoveError) Error() string {
	kind := "file"
	if e.IsDir {
		kind = "folder"
	}
	return fmt.Sprintf("deleting %s %q: %v", kind, e.Path, e.Err)
}

func (e *RemoveError) Unwrap() error { return e.Err }
