//go:build !deadlock

// Package syncutils aliases the mutex types of the standard library, so
// builds with the "deadlock" tag can swap in lock-order checking mutexes
// without touching call sites.
package syncutils

import (
	"sync"
)

type (
	Mutex   = sync.Mutex
	RWMutex = sync.RWMutex
)
