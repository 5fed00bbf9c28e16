package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teardown-go/teardown/pkg/registry"
	"github.com/teardown-go/teardown/pkg/testutil"
)

func TestKeyedSet(t *testing.T) {
	m := registry.NewKeyed()
	p1 := &testutil.Probe{}
	p2 := &testutil.Probe{}

	m.Set("a", p1)
	m.Set("b", p2)
	assert.Equal(t, 2, m.Len())

	got, ok := m.Get("a")
	require.True(t, ok)
	assert.Same(t, p1, got)

	// Replacement flushes the previous occupant.
	p3 := &testutil.Probe{}
	m.Set("a", p3)
	assert.Equal(t, 1, p1.Calls())
	assert.Equal(t, 2, m.Len())
}

func TestKeyedRequiresKey(t *testing.T) {
	m := registry.NewKeyed()
	p := &testutil.Probe{}

	got := m.Set(nil, p)

	assert.Nil(t, got)
	assert.Equal(t, 0, m.Len())
}

func TestKeyedFlush(t *testing.T) {
	m := registry.NewKeyed()
	p := &testutil.Probe{}

	m.Set("k", p)
	m.Flush("k")
	m.Flush("k")

	assert.Equal(t, 1, p.Calls())
	assert.False(t, m.Has("k"))
}

func TestKeyedRemove(t *testing.T) {
	m := registry.NewKeyed()
	p := &testutil.Probe{}

	m.Set("k", p)
	assert.True(t, m.Remove("k"))
	assert.False(t, m.Remove("k"))
	assert.Equal(t, 0, p.Calls())
}

func TestKeyedDisposeOrder(t *testing.T) {
	m := registry.NewKeyed()
	var order []string

	m.Set("a", func() { order = append(order, "a") })
	m.Set("b", func() { order = append(order, "b") })
	m.Set("c", func() { order = append(order, "c") })

	m.Dispose()

	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, m.Len())
}

func TestKeyedMake(t *testing.T) {
	m := registry.NewKeyed()

	got := m.Make("k", func() interface{} { return nil })
	assert.Nil(t, got)
	assert.False(t, m.Has("k"))

	p := &testutil.Probe{}
	got = m.Make("k", func() interface{} { return p })
	assert.Same(t, p, got)
	assert.True(t, m.Has("k"))
}
