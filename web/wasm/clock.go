//go:build js && wasm

package main

import (
	"syscall/js"
	"time"
)

// jsClock reads Date.now() so timings match what the host measures.
type jsClock struct{}

func (jsClock) Now() time.Time {
	ms := js.Global().Get("Date").Call("now").Float()
	return time.UnixMilli(int64(ms))
}
