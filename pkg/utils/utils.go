package utils

import (
	"log"
	"runtime/debug"
)

// ToPointer returns a pointer to a copy of v.
func ToPointer[T any](v T) *T {
	return &v
}

// GoSafe runs fn in a new goroutine and recovers from any panic it raises.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("recovered from panic: %v\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}
