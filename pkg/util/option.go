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

// Option encodes a value which may be absent.  Unlike a pointer, the zero
// value is a well-defined empty option and the contents are held by value.
type Option[T any] struct {
	// Indicates whether contents valid
	present bool
	// Contents (meaningless unless present)
	contents T
}

// Some constructs an option holding the given value.
func Some[T any](val T) Option[T] {
	return Option[T]{present: true, contents: val}
}

// None constructs an empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// HasValue indicates whether or not this option holds a value.
func (o Option[T]) HasValue() bool {
	return o.present
}

// IsEmpty indicates whether or not this option is empty.
func (o Option[T]) IsEmpty() bool {
	return !o.present
}

// Unwrap returns the value held, or panics if this option is empty.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("cannot unwrap an empty option")
	}
	//
	return o.contents
}

// UnwrapOr returns the value held, or the given default if this option is
// empty.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.present {
		return def
	}
	//
	return o.contents
}
