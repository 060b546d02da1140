package memo_test

import (
	"testing"

	"github.com/on-the-ground/collatz_ive_go/memo"
	"github.com/on-the-ground/collatz_ive_go/pure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := memo.Open("redis", 0)
	assert.ErrorIs(t, err, memo.ErrUnknownBackend)
}

func TestOpen_EmptyIsMap(t *testing.T) {
	table, err := memo.Open("", 0)
	require.NoError(t, err)
	defer table.Close()
	require.NoError(t, table.Store(2, 1))
	assert.Equal(t, 1, table.Len())
}

func TestOpen_BoundedBackendsRejectZeroCapacity(t *testing.T) {
	for _, b := range []memo.Backend{memo.BackendRotating, memo.BackendRistretto} {
		_, err := memo.Open(b, 0)
		assert.ErrorIs(t, err, memo.ErrInvalidCapacity, string(b))
	}
}

func TestBackends_StepCountsMatchUncached(t *testing.T) {
	for _, backend := range memo.Backends() {
		t.Run(string(backend), func(t *testing.T) {
			table, err := memo.Open(backend, 256)
			require.NoError(t, err)
			defer table.Close()

			m := pure.NewMemoizer(table)
			for n := int64(1); n <= 3000; n++ {
				want, err := pure.StepsUncached(n)
				require.NoError(t, err)
				got, err := m.Steps(n)
				require.NoError(t, err)
				require.Equal(t, want, got, "n=%d", n)
			}
		})
	}
}

func TestUnboundedBackends_KeepEveryEntry(t *testing.T) {
	for _, backend := range []memo.Backend{memo.BackendMap, memo.BackendMemDB} {
		t.Run(string(backend), func(t *testing.T) {
			table, err := memo.Open(backend, 0)
			require.NoError(t, err)
			defer table.Close()

			_, ok, err := table.Load(27)
			require.NoError(t, err)
			assert.False(t, ok)

			m := pure.NewMemoizer(table)
			_, err = m.Steps(6)
			require.NoError(t, err)
			assert.Equal(t, 8, table.Len())

			for n, want := range map[int64]int{6: 8, 3: 7, 10: 6, 5: 5, 16: 4, 8: 3, 4: 2, 2: 1} {
				got, ok, err := table.Load(n)
				require.NoError(t, err)
				require.True(t, ok, "n=%d", n)
				assert.Equal(t, want, got, "n=%d", n)
			}

			// overwrite keeps the size
			require.NoError(t, table.Store(6, 8))
			assert.Equal(t, 8, table.Len())
		})
	}
}

func TestRotating_KeepsTwoGenerations(t *testing.T) {
	table, err := memo.NewRotating(2)
	require.NoError(t, err)

	require.NoError(t, table.Store(2, 1))
	require.NoError(t, table.Store(4, 2))
	// head is full: rotate, 2 and 4 stay readable in the older generation
	require.NoError(t, table.Store(8, 3))
	assert.Equal(t, 3, table.Len())
	for _, n := range []int64{2, 4, 8} {
		_, ok, _ := table.Load(n)
		assert.True(t, ok, "n=%d", n)
	}

	require.NoError(t, table.Store(16, 4))
	// rotate again: the generation holding 2 and 4 is cleared
	require.NoError(t, table.Store(5, 5))
	assert.Equal(t, 3, table.Len())

	_, ok, _ := table.Load(2)
	assert.False(t, ok)
	v, ok, _ := table.Load(16)
	assert.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestRistretto_StoredValuesAreReadable(t *testing.T) {
	table, err := memo.NewRistretto(1024)
	require.NoError(t, err)
	defer table.Close()

	require.NoError(t, table.Store(27, 111))
	waiter, ok := table.(memo.Waiter)
	require.True(t, ok)
	waiter.Wait()

	v, ok, err := table.Load(27)
	require.NoError(t, err)
	if ok {
		assert.Equal(t, 111, v)
	}
	assert.LessOrEqual(t, table.Len(), 1)
}

func TestWaiter_OnlyAsynchronousTables(t *testing.T) {
	_, isWaiter := memo.NewMap().(memo.Waiter)
	assert.False(t, isWaiter)

	rotating, err := memo.NewRotating(4)
	require.NoError(t, err)
	_, isWaiter = rotating.(memo.Waiter)
	assert.False(t, isWaiter)
}
