// Copyright 2022-2026 The codetidy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package arena provides an index-addressed arena.
//
// Values allocated on an [Arena] are referred to by an [Index] rather than a
// raw pointer. Indices stay valid across any number of later allocations or
// deallocations, which makes them safe to store inside the allocated values
// themselves (e.g. intrusive linked lists). Index 0 is reserved as the nil
// index and is never handed out.
package arena

import "fmt"

// Index is a handle to a value allocated on an [Arena].
//
// The zero value is the nil index, which refers to no value.
type Index uint32

// Nil returns whether this is the nil index.
func (i Index) Nil() bool {
	return i == 0
}

// Arena allocates values of T addressed by stable indices.
//
// A zero Arena is empty and ready to use. Arena is not safe for concurrent
// use.
type Arena[T any] struct {
	// slots[0] is a permanently-zero sentinel slot backing the nil index, so
	// that Deref(0) is well-defined without a branch in the caller.
	slots []T
	free  []Index
}

// New allocates a value and returns its index.
//
// Freed slots are reused in LIFO order before the arena grows.
func (a *Arena[T]) New(value T) Index {
	if a.slots == nil {
		a.slots = make([]T, 1, 16)
	}

	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx] = value
		return idx
	}

	a.slots = append(a.slots, value)
	return Index(len(a.slots) - 1)
}

// Deref returns a pointer to the value at idx.
//
// Dereferencing the nil index returns a pointer to a zero value shared by all
// nil dereferences; writes through it are discarded by the next nil Deref.
// Panics if idx was never allocated.
func (a *Arena[T]) Deref(idx Index) *T {
	if idx.Nil() {
		if a.slots == nil {
			a.slots = make([]T, 1, 16)
		}
		var zero T
		a.slots[0] = zero
		return &a.slots[0]
	}
	if int(idx) >= len(a.slots) {
		panic(fmt.Sprintf("arena: index out of range: %d", idx))
	}
	return &a.slots[idx]
}

// Free returns the slot at idx to the arena for reuse.
//
// Freeing the nil index is a no-op. Freeing the same index twice without an
// intervening New corrupts the free list; callers own that invariant.
func (a *Arena[T]) Free(idx Index) {
	if idx.Nil() {
		return
	}
	if int(idx) >= len(a.slots) {
		panic(fmt.Sprintf("arena: index out of range: %d", idx))
	}
	var zero T
	a.slots[idx] = zero
	a.free = append(a.free, idx)
}

// Len returns the number of live allocations.
func (a *Arena[T]) Len() int {
	if len(a.slots) == 0 {
		return 0
	}
	return len(a.slots) - 1 - len(a.free)
}
