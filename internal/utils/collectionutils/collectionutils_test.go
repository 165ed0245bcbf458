package collectionutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssociate(t *testing.T) {
	type row struct {
		id   string
		name string
	}

	rows := []row{{"a", "one"}, {"b", "two"}, {"a", "three"}}
	m := Associate(rows, func(r row) (string, string) {
		return r.id, r.name
	})

	assert.Len(t, m, 2)
	assert.Equal(t, "three", m["a"], "a later key wins")
	assert.Equal(t, "two", m["b"])
}

func TestGroupBy(t *testing.T) {
	words := []string{"apple", "avocado", "banana", "apricot"}
	groups := GroupBy(words, func(w string) byte {
		return w[0]
	})

	assert.Len(t, groups, 2)
	assert.Equal(t, []string{"apple", "avocado", "apricot"}, groups['a'])
	assert.Equal(t, []string{"banana"}, groups['b'])
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, Distinct([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, Distinct([]string{}))
}

func TestGetOrDefault(t *testing.T) {
	m := map[string]int{"a": 1}

	assert.Equal(t, 1, GetOrDefault(m, "a", 99))
	assert.Equal(t, 99, GetOrDefault(m, "missing", 99))
}

func TestSafeMap(t *testing.T) {
	m := NewSafeMap[string, int]()

	_, ok := m.Get("a")
	assert.False(t, ok)

	m.Store("a", 1)
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	m.Delete("a")
	_, ok = m.Get("a")
	assert.False(t, ok)
}
