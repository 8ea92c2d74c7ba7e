package capture

import "io"

// MockPort implements Port for testing, serving a canned byte stream.
type MockPort struct {
	ReadData    []byte
	WrittenData []byte
	ReadError   error
	Closed      bool
}

func (m *MockPort) Read(p []byte) (int, error) {
	if m.ReadError != nil {
		return 0, m.ReadError
	}
	if len(m.ReadData) == 0 {
		return 0, io.EOF
	}
	n := copy(p, m.ReadData)
	m.ReadData = m.ReadData[n:]
	return n, nil
}

func (m *MockPort) Write(p []byte) (int, error) {
	m.WrittenData = append(m.WrittenData, p...)
	return len(p), nil
}

func (m *MockPort) Close() error {
	m.Closed = true
	return nil
}
