/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package main

import (
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// Logger is the scrollable message log shown in the debug panel.
type Logger struct {
	// buf contains each line of logged text.
	buf []string

	// pos is the current user read position within the log.
	pos int

	// max is the number of lines kept; older lines are dropped.
	max int
}

// Console is the log shown in the window.
var Console = NewLog(500)

// NewLog creates a new Logger holding at most size lines.
func NewLog(size int) *Logger {
	return &Logger{
		buf: make([]string, 0, 100),
		max: size,
	}
}

// Log outputs a new line to the log.
func (l *Logger) Log(s ...string) {
	l.append(strings.Join(s, " "))
}

// Logln outputs a new line to the log, with an empty line prefixed.
func (l *Logger) Logln(s ...string) {
	l.append("", strings.Join(s, " "))
}

func (l *Logger) append(lines ...string) {
	scroll := l.pos == len(l.buf)

	l.buf = append(l.buf, lines...)

	// drop the oldest lines, keeping the read position on the same text
	if n := len(l.buf) - l.max; n > 0 {
		l.buf = append(l.buf[:0], l.buf[n:]...)

		if l.pos -= n; l.pos < 0 {
			l.pos = 0
		}
	}

	if scroll {
		l.pos = len(l.buf)
	}
}

// Len returns the number of lines in the log.
func (l *Logger) Len() int {
	return len(l.buf)
}

// Window returns up to n lines ending at the read position.
func (l *Logger) Window(n int) []string {
	start := l.pos - n

	// don't scroll past the beginning
	if start < 0 {
		start = 0
	}

	if start+n >= len(l.buf) {
		return l.buf[start:]
	}

	return l.buf[start : start+n]
}

// Home scrolls the log to the beginning.
func (l *Logger) Home() {
	l.pos = 0
}

// End scrolls the log to the end.
func (l *Logger) End() {
	l.pos = len(l.buf)
}

// ScrollUp scrolls the log back one position.
func (l *Logger) ScrollUp() {
	l.pos -= 1

	// clamp to home
	if l.pos < 0 {
		l.Home()
	}
}

// ScrollDown scrolls the log forward one position.
func (l *Logger) ScrollDown(windowSize int) {
	l.pos += 1

	// if less than the window size, drop to it
	if l.pos <= windowSize {
		l.pos = windowSize + 1
	}

	// clamp to end
	if l.pos >= len(l.buf) {
		l.End()
	}
}

// Logln writes a message to the window console and the process log.
func Logln(s ...string) {
	Console.Logln(s...)

	if Log != nil {
		Log.Info(strings.Join(s, " "), log.String("source", "host"))
	}
}
