// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// RemoveMatching removes all elements from an array matching the given
// predicate, returning the original array untouched when nothing matches.
func RemoveMatching[T any](items []T, predicate Predicate[T]) []T {
	// Find first match (if any)
	first := -1
	//
	for i, ith := range items {
		if predicate(ith) {
			first = i
			break
		}
	}
	// Avoid allocation when nothing matches
	if first < 0 {
		return items
	}
	//
	nitems := make([]T, first, len(items))
	copy(nitems, items[:first])
	// Retain non-matching remainder
	for _, ith := range items[first+1:] {
		if !predicate(ith) {
			nitems = append(nitems, ith)
		}
	}
	//
	return nitems
}
