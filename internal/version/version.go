//
// Corvid - a UCI chess engine written in Go
//
// MIT License
//
// Copyright (c) 2020-2026 D. Shearer
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package version holds the engine's version string. SemVer is set at
// release time; Build and Date are overridden via -ldflags at compile
// time by the release build and keep the defaults "dev" and "unknown"
// otherwise.
package version

import "fmt"

var (
	SemVer = "1.0.0"
	Build  = "dev"
	Date   = "unknown"
)

// Version returns a single-line identifier combining the semantic
// version with the build commit, e.g. "1.0.0-dev".
func Version() string {
	return fmt.Sprintf("%s-%s", SemVer, Build)
}

// Info returns the full version line including the build date, used
// by the "--version" command line flag.
func Info() string {
	return fmt.Sprintf("%s (build %s, %s)", SemVer, Build, Date)
}
