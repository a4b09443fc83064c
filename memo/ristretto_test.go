package memo_test

import (
	"testing"

	"github.com/on-the-ground/switchcase/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRistretto_StoreAndLoad(t *testing.T) {
	store, err := memo.NewRistretto[string](64)
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.Load(memo.KeysOf("apple"))
	assert.False(t, ok)

	store.Store(memo.KeysOf("apple"), "fruit")

	v, ok := store.Load(memo.KeysOf("apple"))
	assert.True(t, ok)
	assert.Equal(t, "fruit", v)

	_, ok = store.Load(memo.KeysOf("pear"))
	assert.False(t, ok)
}

func TestRistretto_SplitsOfTheSameTextAreDistinct(t *testing.T) {
	store, err := memo.NewRistretto[string](64)
	require.NoError(t, err)
	defer store.Close()

	store.Store(memo.KeysOf("a;string=b", "c"), "first")

	_, ok := store.Load(memo.KeysOf("a", "b;string=c"))
	assert.False(t, ok)

	v, ok := store.Load(memo.KeysOf("a;string=b", "c"))
	assert.True(t, ok)
	assert.Equal(t, "first", v)
}
