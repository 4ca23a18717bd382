// SPDX-License-Identifier: MIT
// Package core_test contains shared test helpers.
//
// Purpose:
//   - Capture logr output deterministically (funcr sink into a buffer).
//   - Build small fixture tables used across table and grouping tests.

package core_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfunc/core"
)

// logSink collects formatted log lines; safe for concurrent writers.
type logSink struct {
	mu    sync.Mutex
	lines []string
}

func (s *logSink) add(prefix, args string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, strings.TrimSpace(prefix+" "+args))
}

// joined returns every captured line separated by newlines.
func (s *logSink) joined() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.lines, "\n")
}

// newCapture returns a verbose logger writing into a fresh sink.
func newCapture() (logr.Logger, *logSink) {
	sink := &logSink{}
	l := funcr.New(sink.add, funcr.Options{Verbosity: 1})
	return l, sink
}

// fixtureTable builds the scenario table: group keys A×10 then B×12, plus a
// running value column.
func fixtureTable(t *testing.T) *core.Table {
	t.Helper()
	groups := make([]string, 0, 22)
	vals := make([]int, 0, 22)
	for i := 0; i < 22; i++ {
		g := "A"
		if i >= 10 {
			g = "B"
		}
		groups = append(groups, g)
		vals = append(vals, i)
	}
	tbl, err := core.NewTable(core.NewCol("group", groups), core.NewCol("v", vals))
	require.NoError(t, err, "fixtureTable")
	return tbl
}
