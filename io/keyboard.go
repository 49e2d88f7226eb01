package io

import (
	"io"
	"sync"
)

// Keys is a buffered, non-blocking keyboard. Bytes arrive either
// programmatically through Press, or from a background reader started
// with Listen.
type Keys struct {
	mu    sync.Mutex
	queue []byte
}

var _ Keyboard = (*Keys)(nil)

// Press queues one key byte.
func (k *Keys) Press(value byte) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.queue = append(k.queue, value)
}

// Poll dequeues the oldest pending key byte, if any.
func (k *Keys) Poll() (value byte, ok bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if len(k.queue) == 0 {
		return
	}

	value = k.queue[0]
	k.queue = k.queue[1:]
	ok = true

	return
}

// Listen pumps bytes from a reader into the key queue from a
// background goroutine, until the reader is exhausted.
func (k *Keys) Listen(input io.Reader) {
	go func() {
		var one [1]byte
		for {
			n, err := input.Read(one[:])
			if n > 0 {
				k.Press(one[0])
			}
			if err != nil {
				return
			}
		}
	}()
}
