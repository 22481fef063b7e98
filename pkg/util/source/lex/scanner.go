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
package lex

// Scanner matches a prefix of its input, returning the number of characters
// matched (with zero meaning no match).
type Scanner func(input []rune) uint

// Or tries each scanner in turn, with the first match winning.
func Or(scanners ...Scanner) Scanner {
	return func(input []rune) uint {
		for _, scanner := range scanners {
			if n := scanner(input); n > 0 {
				return n
			}
		}
		// no match
		return 0
	}
}

// And requires every scanner to match at the current position, yielding the
// longest of their matches.
func And(scanners ...Scanner) Scanner {
	return func(input []rune) uint {
		var longest uint
		//
		for _, scanner := range scanners {
			n := scanner(input)
			//
			if n == 0 {
				// no match
				return 0
			} else if n > longest {
				longest = n
			}
		}
		//
		return longest
	}
}

// Unit matches an exact sequence of characters.
func Unit(chars ...rune) Scanner {
	return func(input []rune) uint {
		if len(input) < len(chars) {
			return 0
		}
		//
		for i, c := range chars {
			if input[i] != c {
				return 0
			}
		}
		//
		return uint(len(chars))
	}
}

// Within matches any one character in a given inclusive range.
func Within(lowest rune, highest rune) Scanner {
	return func(input []rune) uint {
		if len(input) > 0 && lowest <= input[0] && input[0] <= highest {
			return 1
		}
		//
		return 0
	}
}

// Many matches zero or more repetitions of a given scanner.
func Many(scanner Scanner) Scanner {
	return func(input []rune) uint {
		var n uint
		//
		for n < uint(len(input)) {
			m := scanner(input[n:])
			//
			if m == 0 {
				break
			}
			//
			n += m
		}
		//
		return n
	}
}

// Eof matches the end of the input.  The match is given a notional width of
// one so that it registers, though the resulting token is clipped back to an
// empty span.
func Eof() Scanner {
	return func(input []rune) uint {
		if len(input) == 0 {
			return 1
		}
		//
		return 0
	}
}
