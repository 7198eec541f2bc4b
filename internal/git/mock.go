package git

// Compile-time check that MockRepository implements Repository.
var _ Repository = (*MockRepository)(nil)

// MockRepository is a configurable mock implementation of Repository for testing.
// Each method is backed by a function field. If the function field is nil,
// the method returns sensible zero values.
type MockRepository struct {
	WorkingDirectoryFunc           func() string
	HeadFunc                       func() (Branch, error)
	TagExistsFunc                  func(string) (bool, error)
	BranchExistsFunc               func(string) (bool, error)
	NumberOfUncommittedChangesFunc func() (int, error)
	RemoteURLFunc                  func(string) (string, error)
}

func (m *MockRepository) WorkingDirectory() string {
	if m.WorkingDirectoryFunc != nil {
		return m.WorkingDirectoryFunc()
	}
	return ""
}

func (m *MockRepository) Head() (Branch, error) {
	if m.HeadFunc != nil {
		return m.HeadFunc()
	}
	return Branch{}, nil
}

func (m *MockRepository) TagExists(name string) (bool, error) {
	if m.TagExistsFunc != nil {
		return m.TagExistsFunc(name)
	}
	return false, nil
}

func (m *MockRepository) BranchExists(name string) (bool, error) {
	if m.BranchExistsFunc != nil {
		return m.BranchExistsFunc(name)
	}
	return false, nil
}

func (m *MockRepository) NumberOfUncommittedChanges() (int, error) {
	if m.NumberOfUncommittedChangesFunc != nil {
		return m.NumberOfUncommittedChangesFunc()
	}
	return 0, nil
}

func (m *MockRepository) RemoteURL(name string) (string, error) {
	if m.RemoteURLFunc != nil {
		return m.RemoteURLFunc(name)
	}
	return "", nil
}
