package demo_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-fnkit/internal/demo"
)

func run(t *testing.T, only ...string) string {
	t.Helper()
	cfg := demo.DefaultConfig()
	cfg.FizzBuzzLimit = 15
	cfg.Only = only

	var out bytes.Buffer
	r, err := demo.NewRunner(cfg, &out, testr.NewWithOptions(t, testr.Options{Verbosity: 1}))
	require.NoError(t, err)
	require.NoError(t, r.Run(context.Background()))
	return out.String()
}

func TestScenarioOutput(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"fizzbuzz", "== Fancy FizzBuzz ==\n1, 2, Fizz, 4, Buzz, Fizz, 7, 8, Fizz, Buzz, 11, Fizz, 13, 14, FizzBuzz\n"},
		{"counter", "== Functional objects ==\n1\n2\n3\n"},
		{"lambda", "== Lambda shortcut ==\n328350 true\n"},
		{"fuzzy", "== Fuzzy string match ==\n0.4444 Clémence\n0.3636 Clémentine\n0.0000 Timothée\n"},
		{"indexing", "== Array indexing ==\n[0 1 4 9 16 25 36 49 64 81] [1 3 5 7 9] [1 9 25 49 81]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(t, tt.name))
		})
	}
}

func TestDecomposition(t *testing.T) {
	assert.Contains(t, run(t, "decomposition"), "-23.47 = -1 * (23 + 0.47)")
}

func TestMergeSort(t *testing.T) {
	assert.True(t, strings.HasSuffix(run(t, "mergesort"), "→ [0 1 2 3 4 5 6 7 8 9]\n"))
}

func TestCardsAreDealtOnceAndReproducibly(t *testing.T) {
	first := run(t, "cards")
	assert.Equal(t, first, run(t, "cards"))

	lines := strings.Split(strings.TrimSpace(first), "\n")
	require.Len(t, lines, 1+3+1)
	assert.True(t, strings.HasPrefix(lines[1], "Douglas Crockford: "))
	assert.True(t, strings.HasPrefix(lines[4], "flop "))

	var cards []string
	for _, line := range lines[1:4] {
		_, hand, _ := strings.Cut(line, ": ")
		cards = append(cards, strings.Fields(hand)...)
	}
	community := strings.NewReplacer(",", "", "flop", "", "turn", "", "river", "").Replace(lines[4])
	cards = append(cards, strings.Fields(community)...)
	require.Len(t, cards, 6+5)

	seen := map[string]bool{}
	for _, c := range cards {
		assert.False(t, seen[c], "dealt twice: %s", c)
		seen[c] = true
	}
}

func TestRunAllInCatalogOrder(t *testing.T) {
	out := run(t)
	var titles []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "== ") {
			titles = append(titles, line)
		}
	}
	assert.Len(t, titles, len(demo.Names()))
	assert.Equal(t, "== Fancy FizzBuzz ==", titles[0])
	assert.Equal(t, "== Array indexing ==", titles[len(titles)-1])
}

var errWrite = errors.New("write refused")

// bodyRefusingWriter accepts scenario headers and refuses everything else.
type bodyRefusingWriter struct{ bytes.Buffer }

func (w *bodyRefusingWriter) Write(p []byte) (int, error) {
	if bytes.HasPrefix(p, []byte("== ")) {
		return w.Buffer.Write(p)
	}
	return 0, errWrite
}

func TestRunKeepsGoingAndCombinesFailures(t *testing.T) {
	cfg := demo.DefaultConfig()
	cfg.Only = []string{"counter", "indexing"}

	var out bodyRefusingWriter
	r, err := demo.NewRunner(cfg, &out, logr.Logger{})
	require.NoError(t, err)

	err = r.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errWrite)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, err.Error(), "counter: ")
	assert.Contains(t, err.Error(), "indexing: ")
	assert.Equal(t, "== Functional objects ==\n== Array indexing ==\n", out.String())
}

func TestRunStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	r, err := demo.NewRunner(demo.DefaultConfig(), &out, logr.Discard())
	require.NoError(t, err)
	assert.ErrorIs(t, r.Run(ctx), context.Canceled)
	assert.Empty(t, out.String())
}

func TestNewRunnerValidates(t *testing.T) {
	cfg := demo.DefaultConfig()
	cfg.Players = nil
	_, err := demo.NewRunner(cfg, &bytes.Buffer{}, logr.Discard())
	assert.ErrorIs(t, err, demo.ErrInvalidConfig)
}
