package pkg

import (
	"bytes"
	"strings"

	"github.com/dolthub/swiss"
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/slices"
)

const MAP_SIZE = 1024

type HashKey = uint64

func Hash(s []byte) HashKey {
	return xxh3.Hash(s)
}

// Row is one finished key with its statistics.
type Row struct {
	Key  string
	Data CityData
}

type entry struct {
	key  Key
	hash HashKey
	next int32
	data CityData
}

// Table deduplicates keys and accumulates statistics for one worker. Keys
// live in the table's arena; the index maps a hash to the newest entry of
// its collision chain.
type Table struct {
	arena   *Arena
	index   *swiss.Map[HashKey, int32]
	entries []entry
}

func NewTable(arena *Arena) *Table {
	return &Table{
		arena:   arena,
		index:   swiss.NewMap[HashKey, int32](MAP_SIZE),
		entries: make([]entry, 0, MAP_SIZE),
	}
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Observe folds one value into the entry for key. The key is interned first
// and retracted again when the table already holds it.
func (t *Table) Observe(key []byte, value int32) {
	h := Hash(key)
	k := t.arena.Intern(key)
	if i := t.find(h, key); i >= 0 {
		t.entries[i].data.MergeValue(value)
		t.arena.Retract(k)
		return
	}
	t.insert(h, k, NewCityData(value))
}

// Merge folds every entry of other into t. other is left untouched and must
// not be t itself.
func (t *Table) Merge(other *Table) {
	for i := range other.entries {
		e := &other.entries[i]
		key := other.arena.Bytes(e.key)
		if j := t.find(e.hash, key); j >= 0 {
			t.entries[j].data.Merge(&e.data)
			continue
		}
		t.insert(e.hash, t.arena.Intern(key), e.data)
	}
}

func (t *Table) Get(key []byte) (CityData, bool) {
	if i := t.find(Hash(key), key); i >= 0 {
		return t.entries[i].data, true
	}
	return CityData{}, false
}

// Sorted returns all entries ordered by key bytes.
func (t *Table) Sorted() []Row {
	rows := make([]Row, 0, len(t.entries))
	for i := range t.entries {
		e := &t.entries[i]
		rows = append(rows, Row{Key: string(t.arena.Bytes(e.key)), Data: e.data})
	}

	slices.SortFunc(rows, func(a, b Row) int {
		return strings.Compare(a.Key, b.Key)
	})
	return rows
}

func (t *Table) find(h HashKey, key []byte) int32 {
	i, ok := t.index.Get(h)
	if !ok {
		return -1
	}
	for ; i >= 0; i = t.entries[i].next {
		if bytes.Equal(t.arena.Bytes(t.entries[i].key), key) {
			return i
		}
	}
	return -1
}

func (t *Table) insert(h HashKey, k Key, data CityData) {
	next := int32(-1)
	if head, ok := t.index.Get(h); ok {
		next = head
	}
	t.entries = append(t.entries, entry{key: k, hash: h, next: next, data: data})
	t.index.Put(h, int32(len(t.entries)-1))
}
