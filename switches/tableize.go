package switches

import (
	"github.com/on-the-ground/switchcase/memo"
	"golang.org/x/sync/singleflight"
)

// TableizeI1 turns a switch definition parameterized by one subject into a
// memoized resolver. The switch for a subject is defined and evaluated once;
// later calls with an equal subject return the stored result.
//
// Subjects must be comparable or implement fmt.Stringer. Errors are returned
// but never stored, and concurrent calls for the same subject share a single
// evaluation.
//
// define must be deterministic in its subject: a result is reused for every
// subject with the same key.
func TableizeI1[I1 any, T any](
	define func(I1) *Switch[T],
	store memo.Store[T],
) func(I1) (T, error) {
	t := newTable(func(args ...any) *Switch[T] {
		return define(args[0].(I1))
	}, store)
	return func(i1 I1) (T, error) {
		return t.resolve(i1)
	}
}

// TableizeI2 is TableizeI1 for switches over two subjects.
func TableizeI2[I1, I2 any, T any](
	define func(I1, I2) *Switch[T],
	store memo.Store[T],
) func(I1, I2) (T, error) {
	t := newTable(func(args ...any) *Switch[T] {
		return define(args[0].(I1), args[1].(I2))
	}, store)
	return func(i1 I1, i2 I2) (T, error) {
		return t.resolve(i1, i2)
	}
}

type table[T any] struct {
	define func(...any) *Switch[T]
	store  memo.Store[T]
	group  singleflight.Group
}

func newTable[T any](define func(...any) *Switch[T], store memo.Store[T]) *table[T] {
	if store == nil {
		panic("switches: nil memo store")
	}
	return &table[T]{define: define, store: store}
}

func (t *table[T]) resolve(args ...any) (T, error) {
	keys := memo.KeysOf(args...)
	if v, ok := t.store.Load(keys); ok {
		return v, nil
	}

	res, err, _ := t.group.Do(memo.Encode(keys), func() (any, error) {
		if v, ok := t.store.Load(keys); ok {
			return v, nil
		}
		v, err := t.define(args...).Eval()
		if err != nil {
			return nil, err
		}
		t.store.Store(keys, v)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	v, _ := res.(T)
	return v, nil
}
