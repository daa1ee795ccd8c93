package handler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	messages []string
}

func (r *scriptedReader) ReadMessage() (int, []byte, error) {
	if len(r.messages) == 0 {
		return 0, nil, errors.New("connection closed")
	}

	msg := r.messages[0]
	r.messages = r.messages[1:]
	return 1, []byte(msg), nil
}

func runReader(reader messageReader, ch chan wsincomingmessage, done chan struct{}) chan struct{} {
	finished := make(chan struct{})
	go func() {
		readIncoming(reader, ch, done)
		close(finished)
	}()

	return finished
}

func TestReadIncomingForwardsUntilError(t *testing.T) {
	ch := make(chan wsincomingmessage)
	done := make(chan struct{})
	defer close(done)

	finished := runReader(&scriptedReader{messages: []string{"hello"}}, ch, done)

	first := <-ch
	require.NoError(t, first.err)
	assert.Equal(t, "hello", string(first.p))

	last := <-ch
	assert.Error(t, last.err)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("reader did not stop after the connection error")
	}
}

func TestReadIncomingStopsWhenNobodyListens(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
	}{
		{"pending error", nil},
		{"pending messages", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := make(chan wsincomingmessage)
			done := make(chan struct{})

			finished := runReader(&scriptedReader{messages: tt.messages}, ch, done)

			// the handler left without draining ch
			close(done)

			select {
			case <-finished:
			case <-time.After(time.Second):
				t.Fatal("reader goroutine leaked")
			}
		})
	}
}
