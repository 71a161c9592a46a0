package plugin

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeModule implements Module without touching the dynamic linker.
type fakeModule struct {
	path string

	initCalls   int
	uninitCalls int
	closeCalls  int

	hookStatus int32
	hookPanic  bool
	hookCalls  []ExecContext

	uninitStatus int32
	uninitPanic  bool
	closeErr     error

	// journal, when shared across modules, records teardown order.
	journal *[]string
}

func (m *fakeModule) Path() string { return m.path }

func (m *fakeModule) Init() int32 {
	m.initCalls++
	return 0
}

func (m *fakeModule) Uninit() int32 {
	m.uninitCalls++
	if m.journal != nil {
		*m.journal = append(*m.journal, m.path)
	}
	if m.uninitPanic {
		panic("uninit blew up")
	}
	return m.uninitStatus
}

func (m *fakeModule) OnExecve(caller string, shellLevel int, command string, argv []string) int32 {
	m.hookCalls = append(m.hookCalls, ExecContext{
		Caller:     caller,
		ShellLevel: shellLevel,
		Command:    command,
		Argv:       argv,
	})
	if m.hookPanic {
		panic("hook blew up")
	}
	return m.hookStatus
}

func (m *fakeModule) Close() error {
	m.closeCalls++
	return m.closeErr
}

// fakeHost fabricates modules for an OpenFunc. Each open of a path makes a
// fresh module, so duplicate config entries get independent instances.
type fakeHost struct {
	opened    []*fakeModule
	failures  map[string]error
	behaviors map[string]func(*fakeModule)
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		failures:  make(map[string]error),
		behaviors: make(map[string]func(*fakeModule)),
	}
}

func (h *fakeHost) open(path string) (Module, error) {
	if err := h.failures[path]; err != nil {
		return nil, err
	}
	m := &fakeModule{path: path}
	if setup := h.behaviors[path]; setup != nil {
		setup(m)
	}
	h.opened = append(h.opened, m)
	return m, nil
}

func writeConfig(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plugsh.plugin")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}
