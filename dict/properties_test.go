package dict_test

import (
	"testing"

	"hashdict/dict"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

const (
	opAdd = iota
	opRemove
	opGet
	opSet
	opContains
	opClear
)

type dictOp struct {
	kind int
	key  uint64
	val  uint64
}

func opGenerator() *rapid.Generator[dictOp] {
	return rapid.Custom(func(t *rapid.T) dictOp {
		// clear is drawn rarely; a small key range forces duplicates,
		// collisions and misses
		kind := rapid.IntRange(0, 24).Draw(t, "kind")
		if kind > opClear {
			kind = kind % opClear
		}
		return dictOp{
			kind: kind,
			key:  rapid.Uint64Range(0, 40).Draw(t, "key"),
			val:  rapid.Uint64().Draw(t, "val"),
		}
	})
}

// Drive a random operation sequence against a map model and check that the
// dictionary agrees at every step, then that counters, the capacity floor and
// iteration agree at the end.
func TestDictMatchesModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)

		initial := rapid.Uint64Range(1, 8).Draw(t, "initial")
		ops := rapid.SliceOfN(opGenerator(), 0, 300).Draw(t, "ops")

		d := dict.NewSize[uint64, uint64](dict.Uint64Hash, dict.Equal[uint64], initial)
		model := make(map[uint64]uint64)

		for _, op := range ops {
			_, present := model[op.key]
			switch op.kind {
			case opAdd:
				err := d.Add(op.key, op.val)
				if present {
					assert.ErrorIs(err, dict.ErrDuplicateKey)
				} else {
					assert.NoError(err)
					model[op.key] = op.val
				}
			case opRemove:
				err := d.Remove(op.key)
				if present {
					assert.NoError(err)
					delete(model, op.key)
				} else {
					assert.ErrorIs(err, dict.ErrKeyNotFound)
				}
			case opGet:
				v, err := d.Get(op.key)
				if present {
					assert.NoError(err)
					assert.Equal(model[op.key], v)
				} else {
					assert.ErrorIs(err, dict.ErrKeyNotFound)
				}
			case opSet:
				err := d.Set(op.key, op.val)
				if present {
					assert.NoError(err)
					model[op.key] = op.val
				} else {
					assert.ErrorIs(err, dict.ErrKeyNotFound)
				}
			case opContains:
				assert.Equal(present, d.ContainsKey(op.key))
			case opClear:
				d.Clear()
				model = make(map[uint64]uint64)
				assert.Equal(initial, d.Buckets())
			}

			assert.Equal(uint64(len(model)), d.Count())
			assert.GreaterOrEqual(d.Buckets(), initial)
			assert.LessOrEqual(d.FilledBuckets(), d.Buckets())
		}

		// every live key is retrievable with its current value
		for k, want := range model {
			v, err := d.Get(k)
			assert.NoError(err)
			assert.Equal(want, v)
		}

		// iteration yields each live key exactly once
		seen := make(map[uint64]uint64)
		for c := d.Cursor(); c.Advance(); {
			e, err := c.Current()
			assert.NoError(err)
			_, dup := seen[e.Key]
			assert.False(dup, "key %d iterated twice", e.Key)
			seen[e.Key] = e.Value
		}
		assert.Equal(model, seen)
	})
}
