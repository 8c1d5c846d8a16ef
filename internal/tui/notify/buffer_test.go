package notify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/toast/internal/core/toast"
)

func TestBuffer_Drain_empty_returnsNil(t *testing.T) {
	b := NewBuffer()
	assert.Nil(t, b.Drain())
}

func TestBuffer_PushDrain_orderAndClear(t *testing.T) {
	b := NewBuffer()
	b.Push(toast.Text("first"))
	b.Push(toast.Record{Kind: toast.KindError, Text: "second"})

	items := b.Drain()
	require.Len(t, items, 2)
	assert.Equal(t, toast.Text("first"), items[0])
	assert.Equal(t, toast.Record{Kind: toast.KindError, Text: "second"}, items[1])
	assert.Nil(t, b.Drain())
}

func TestBuffer_WaitForSignal_bufferedSignal(t *testing.T) {
	b := NewBuffer()
	b.Push(toast.Text("queued"))

	msg := b.WaitForSignal()()
	_, ok := msg.(DrainMsg)
	require.True(t, ok)
}

func TestBuffer_WaitForSignal_singleSignalDrainsAll(t *testing.T) {
	b := NewBuffer()
	b.Push(toast.Text("one"))
	b.Push(toast.Text("two"))

	msg := b.WaitForSignal()()
	_, ok := msg.(DrainMsg)
	require.True(t, ok)

	items := b.Drain()
	require.Len(t, items, 2)
	assert.Equal(t, toast.Text("one"), items[0])
	assert.Equal(t, toast.Text("two"), items[1])
}

func TestBuffer_ConcurrentPush_noLoss(t *testing.T) {
	b := NewBuffer()
	const count = 200

	var wg sync.WaitGroup
	for range count {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Push(toast.Text("x"))
		}()
	}
	wg.Wait()

	assert.Len(t, b.Drain(), count)
}
