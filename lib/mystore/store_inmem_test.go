package mystore

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	UID  string
	Name string
}

func TestPutGet(t *testing.T) {
	ctx := context.TODO()
	store, cleanup, err := NewInMemoryStore[record](ctx)
	assert.NoError(t, err)
	defer cleanup()

	err = store.Put(ctx, "1", record{UID: "1", Name: "first"})
	assert.NoError(t, err)

	got, exists, err := store.Get(ctx, "1")
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "first", got.Name)

	_, exists, err = store.Get(ctx, "2")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestList(t *testing.T) {
	ctx := context.TODO()
	store, cleanup, err := NewInMemoryStore[record](ctx)
	assert.NoError(t, err)
	defer cleanup()

	for i := 0; i < 3; i++ {
		uid := fmt.Sprintf("%d", i)
		err = store.Put(ctx, uid, record{UID: uid})
		assert.NoError(t, err)
	}

	records, err := store.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestTransactionReleasesLockOnError(t *testing.T) {
	ctx := context.TODO()
	store, cleanup, err := NewInMemoryStore[record](ctx)
	assert.NoError(t, err)
	defer cleanup()

	err = store.RunInTransaction(ctx, func(c context.Context) error {
		innerErr := store.Put(c, "1", record{UID: "1"})
		assert.NoError(t, innerErr)

		return fmt.Errorf("boom")
	})
	assert.Error(t, err)

	// store can still be used afterwards
	err = store.Put(ctx, "2", record{UID: "2"})
	assert.NoError(t, err)
}
