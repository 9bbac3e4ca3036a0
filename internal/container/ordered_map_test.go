package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okvist/serlog/internal/container"
)

func TestOrderedMapScansInKeyOrder(t *testing.T) {
	m := container.NewOrderedMap[string, int]()
	m.Add("delta", 4)
	m.Add("alpha", 1)
	m.Add("charlie", 3)
	m.Add("bravo", 2)

	keys := make([]string, 0, m.Len())
	values := make([]int, 0, m.Len())
	m.ScanKV(func(k string, v int) {
		keys = append(keys, k)
		values = append(values, v)
	})
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, keys)
	assert.Equal(t, []int{1, 2, 3, 4}, values)
}

func TestOrderedMapAddReplacesValue(t *testing.T) {
	m := container.NewOrderedMap[string, int]()
	m.Add("key", 1)
	m.Add("key", 2)

	assert.Equal(t, 1, m.Len())
	v, ok := m.Get("key")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}
