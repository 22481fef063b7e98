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
package source

import (
	"fmt"
	"os"
)

// ReadFiles loads the given source files from disk, failing on the first
// file which cannot be read.
func ReadFiles(filenames ...string) ([]File, error) {
	var files []File
	//
	for _, n := range filenames {
		bytes, err := os.ReadFile(n)
		//
		if err != nil {
			return nil, err
		}
		//
		files = append(files, *NewSourceFile(n, bytes))
	}
	//
	return files, nil
}

// File represents a given source file (typically stored on disk), held as
// runes so that spans count characters rather than bytes.
type File struct {
	// Name of this file.
	filename string
	// Full text of this file.
	contents []rune
	// Spans of the physical lines of this file, excluding their newlines.
	// There is always at least one line, even for an empty file.
	lines []Span
}

// NewSourceFile constructs a source file from raw bytes, decoding them into
// runes.
func NewSourceFile(filename string, bytes []byte) *File {
	contents := []rune(string(bytes))
	//
	return &File{filename, contents, scanLines(contents)}
}

// Filename returns the name of this source file.
func (p *File) Filename() string {
	return p.filename
}

// Contents returns the full text of this source file.
func (p *File) Contents() []rune {
	return p.contents
}

// SyntaxError constructs a syntax error reported against a given span of
// this file.
func (p *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{p, span, msg}
}

// FindFirstEnclosingLine determines the first line in this source file which
// encloses the start of a span.  A position beyond the end of the file yields
// the last physical line.  The returned line is not guaranteed to enclose the
// entire span, since spans can cross multiple lines.
func (p *File) FindFirstEnclosingLine(span Span) Line {
	for i, ln := range p.lines {
		// Check whether span starts on this line, where a position on the
		// trailing newline itself counts as this line.
		if span.start <= ln.end {
			return p.line(i)
		}
	}
	// Position beyond end of file
	return p.line(len(p.lines) - 1)
}

// Construct the view of the ith physical line.
func (p *File) line(i int) Line {
	span := p.lines[i]
	//
	return Line{p.contents[span.start:span.end], span.start, i + 1}
}

// Determine the spans of the physical lines of a given text.  The span of
// each line excludes its terminating newline, and a text ending in a newline
// has a final empty line after it.
func scanLines(contents []rune) []Span {
	var (
		lines []Span
		start int
	)
	//
	for i, c := range contents {
		if c == '\n' {
			lines = append(lines, Span{start, i})
			start = i + 1
		}
	}
	//
	return append(lines, Span{start, len(contents)})
}

// Line is a view of one physical line of a source file, retaining its
// position within the original text.
type Line struct {
	// Text of this line, excluding any newline.
	text []rune
	// Index of the first character of this line in the original text.
	offset int
	// Line number (counting from 1).
	number int
}

// String returns the text of this line.
func (p *Line) String() string {
	return string(p.text)
}

// Number returns the line number of this line, counting from 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the index of the first character of this line in the original
// text.
func (p *Line) Start() int {
	return p.offset
}

// Length returns the number of characters on this line.
func (p *Line) Length() int {
	return len(p.text)
}

// SyntaxError is a structured error which retains the span of the original
// text where the error arose, along with an error message.
type SyntaxError struct {
	srcfile *File
	// Span of text being parsed where error arose.
	span Span
	// Message describing the error.
	msg string
}

// SourceFile returns the file in which this syntax error arose.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the region of text against which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the description of this error.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.start, p.span.end, p.msg)
}

// FirstEnclosingLine determines the first line in this source file to which
// this error is associated, following the same convention as
// FindFirstEnclosingLine.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}
