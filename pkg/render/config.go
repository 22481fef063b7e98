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

// Package render provides read-only renderers over tableau results: plain and
// box-drawing derivation trees, model listings, LaTeX (qtree) output and a
// JSON dump.  Renderers never consult global state; all presentation choices
// are carried by an explicit Config.
package render

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/consensys/go-wkrq/pkg/wkrq"
)

// Config determines how textual renderers present a result.
type Config struct {
	// Unicode selects box-drawing branch glyphs and the ○ / ✗ markers in
	// place of their ASCII equivalents.
	Unicode bool
	// Colour enables ANSI colouring of signs, markers and verdicts.
	Colour bool
	// Width bounds the rendered line length, with zero meaning unbounded.
	// Overlong lines are truncated.
	Width uint
}

// DefaultConfig determines a sensible configuration for a given writer.
// Colour is enabled when the writer is a terminal and NO_COLOR is unset, and
// the line width is probed from the terminal.
func DefaultConfig(w io.Writer) Config {
	config := Config{Unicode: true}
	//
	f, ok := w.(*os.File)
	//
	if ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		config.Colour = os.Getenv("NO_COLOR") == ""
		// Probe terminal width
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			config.Width = uint(width)
		}
	}
	//
	return config
}

// palette bundles the colour styles used across the textual renderers.  When
// colouring is disabled every style degrades to the identity.
type palette struct {
	signs   [5]*color.Color
	rule    *color.Color
	closed  *color.Color
	open    *color.Color
	good    *color.Color
	bad     *color.Color
	partial *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		signs: [5]*color.Color{
			wkrq.T: color.New(color.FgGreen),
			wkrq.F: color.New(color.FgRed),
			wkrq.E: color.New(color.FgYellow),
			wkrq.M: color.New(color.FgCyan),
			wkrq.N: color.New(color.FgMagenta),
		},
		rule:    color.New(color.Faint),
		closed:  color.New(color.FgRed, color.Bold),
		open:    color.New(color.FgGreen),
		good:    color.New(color.FgGreen, color.Bold),
		bad:     color.New(color.FgRed, color.Bold),
		partial: color.New(color.FgYellow, color.Bold),
	}
	//
	for _, c := range p.all() {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	//
	return p
}

func (p *palette) all() []*color.Color {
	colours := []*color.Color{p.rule, p.closed, p.open, p.good, p.bad, p.partial}
	return append(colours, p.signs[:]...)
}

// sign renders a sign in its style.
func (p *palette) sign(s wkrq.Sign) string {
	return p.signs[s].Sprint(s.String())
}

// state renders a bilateral information state in a style matching its
// polarity: definite states in green or red, both in magenta, neither in
// yellow.
func (p *palette) state(s wkrq.InfoState) string {
	switch s {
	case wkrq.TrueOnly:
		return p.signs[wkrq.T].Sprint(s.String())
	case wkrq.FalseOnly:
		return p.signs[wkrq.F].Sprint(s.String())
	case wkrq.Glut:
		return p.signs[wkrq.N].Sprint(s.String())
	default:
		return p.signs[wkrq.E].Sprint(s.String())
	}
}
