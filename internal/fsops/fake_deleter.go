package fsops

// FakeDeleter implements Deleter for testing.
// It records every call and, when Next is set, forwards the call to it.
// Paths listed in Fail return the mapped error without being forwarded.
type FakeDeleter struct {
	Calls []string
	Fail  map[string]error
	Next  Deleter
}

func (f *FakeDeleter) Remove(path string) error {
	f.Calls = append(f.Calls, "rm:"+path)
	if err, ok := f.Fail[path]; ok {
		return err
	}
	if f.Next != nil {
		return f.Next.Remove(path)
	}
	return nil
}

func (f *FakeDeleter) RemoveAll(path string) error {
	f.Calls = append(f.Calls, "rmall:"+path)
	if err, ok := f.Fail[path]; ok {
		return err
	}
	if f.Next != nil {
		return f.Next.RemoveAll(path)
	}
	return nil
}
