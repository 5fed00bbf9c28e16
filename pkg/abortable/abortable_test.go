package abortable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teardown-go/teardown/pkg/abortable"
	"github.com/teardown-go/teardown/pkg/disposer"
	"github.com/teardown-go/teardown/pkg/testutil"
)

func TestDispose(t *testing.T) {
	t.Run("observer runs before underlying", func(t *testing.T) {
		var order []string
		w := abortable.Wrap(func() { order = append(order, "underlying") })
		w.Subscribe(func() { order = append(order, "observer") })

		w.Dispose()

		assert.Equal(t, []string{"observer", "underlying"}, order)
	})

	t.Run("second dispose is inert", func(t *testing.T) {
		p := &testutil.Probe{}
		notified := 0
		w := abortable.Wrap(p)
		w.Subscribe(func() { notified++ })

		w.Dispose()
		w.Dispose()

		assert.Equal(t, 1, p.Calls())
		assert.Equal(t, 1, notified)
	})

	t.Run("works without a subscriber", func(t *testing.T) {
		p := &testutil.Probe{}
		w := abortable.Wrap(p)

		w.Dispose()

		assert.Equal(t, 1, p.Calls())
	})

	t.Run("panicking observer does not skip underlying", func(t *testing.T) {
		var rep testutil.Reporter
		prev := disposer.SetReporter(rep.Report)
		defer disposer.SetReporter(prev)

		p := &testutil.Probe{}
		w := abortable.Wrap(p)
		w.Subscribe(func() { panic("observer boom") })

		assert.NotPanics(t, func() { w.Dispose() })
		assert.Equal(t, 1, p.Calls())
		require.Equal(t, 1, rep.Count())
	})
}

func TestSubscribe(t *testing.T) {
	t.Run("new subscription supersedes the old one", func(t *testing.T) {
		w := abortable.Wrap(&testutil.Probe{})

		first := 0
		second := 0
		w.Subscribe(func() { first++ })
		w.Subscribe(func() { second++ })

		// Installing the second observer detached the first.
		assert.Equal(t, 1, first)
		assert.Equal(t, 0, second)

		w.Dispose()
		assert.Equal(t, 1, first)
		assert.Equal(t, 1, second)
	})
}

func TestIs(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  bool
	}{
		{"wrapper", abortable.Wrap(&testutil.Probe{}), true},
		{"plain disposer", &testutil.Probe{}, false},
		{"bare func", func() {}, false},
		{"nil", nil, false},
		{"non-disposable", "nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, abortable.Is(tt.value))
		})
	}
}
