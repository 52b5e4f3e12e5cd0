package services

import (
	"fmt"

	"github.com/propdoc/propdoc/pkg/propdoc"
)

type mockLoader struct {
	descriptors []propdoc.Descriptor
	err         error
	gotRoots    []string
}

func (m *mockLoader) LoadDescriptors(roots []string) ([]propdoc.Descriptor, error) {
	m.gotRoots = roots
	return m.descriptors, m.err
}

type mockRenderer struct {
	renderText string
	renderErr  error
	writeErr   error
	gotDoc     propdoc.Documentation
	gotPath    string
	writeCalls int
}

func (m *mockRenderer) Render(doc propdoc.Documentation) (string, error) {
	m.gotDoc = doc
	return m.renderText, m.renderErr
}

func (m *mockRenderer) RenderToFile(doc propdoc.Documentation, outputPath string) error {
	m.writeCalls++
	m.gotDoc = doc
	m.gotPath = outputPath
	return m.writeErr
}

// mockLogger records every formatted line so tests can assert on the exact
// messages a run produces.
type mockLogger struct {
	verboseLines []string
	infoLines    []string
	errorLines   []string
}

func (m *mockLogger) Verbose(format string, args ...interface{}) {
	m.verboseLines = append(m.verboseLines, fmt.Sprintf(format, args...))
}

func (m *mockLogger) Info(format string, args ...interface{}) {
	m.infoLines = append(m.infoLines, fmt.Sprintf(format, args...))
}

func (m *mockLogger) Error(format string, args ...interface{}) {
	m.errorLines = append(m.errorLines, fmt.Sprintf(format, args...))
}
