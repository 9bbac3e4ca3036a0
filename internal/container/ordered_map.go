package container

import (
	"cmp"

	"github.com/tidwall/btree"
)

// OrderedMap keeps entries sorted by key so scans are deterministic.
type OrderedMap[T cmp.Ordered, U any] struct {
	base btree.Map[T, U]
}

func NewOrderedMap[T cmp.Ordered, U any]() *OrderedMap[T, U] {
	return &OrderedMap[T, U]{}
}

func (m *OrderedMap[T, U]) Add(key T, value U) {
	m.base.Set(key, value)
}

func (m *OrderedMap[T, U]) Get(key T) (U, bool) {
	return m.base.Get(key)
}

func (m *OrderedMap[T, U]) Len() int {
	return m.base.Len()
}

func (m *OrderedMap[T, U]) ScanKV(fn func(key T, value U)) {
	m.base.Scan(func(key T, value U) bool {
		fn(key, value)
		return true
	})
}
