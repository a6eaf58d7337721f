// Package logging prints tagged, colored console output.
//
// Errors and warnings go to stderr, everything else to stdout. Debug output
// is gated by the package Level, set from the terminal flags at startup.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"tubelist/internal/domain/consts"
)

var (
	// Level gates debug output: D(l, ...) prints only when l <= Level.
	Level int
	mu    sync.Mutex
)

// E prints an error message with a caller tag to stderr.
func E(format string, args ...interface{}) string {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.Grow(len(consts.RedError) + len(format) + (len(args) * 32))
	b.WriteString(consts.RedError)
	writeMessage(&b, format, args)
	writeCallerTag(&b)

	msg := b.String()
	fmt.Fprint(os.Stderr, msg)
	return msg
}

// W prints a warning message to stderr.
func W(format string, args ...interface{}) string {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.Grow(len(consts.YellowWarning) + len(format) + len("\n") + (len(args) * 32))
	b.WriteString(consts.YellowWarning)
	writeMessage(&b, format, args)
	b.WriteString("\n")

	msg := b.String()
	fmt.Fprint(os.Stderr, msg)
	return msg
}

// S prints a success message to stdout.
func S(format string, args ...interface{}) string {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.Grow(len(consts.GreenSuccess) + len(format) + len("\n") + (len(args) * 32))
	b.WriteString(consts.GreenSuccess)
	writeMessage(&b, format, args)
	b.WriteString("\n")

	msg := b.String()
	fmt.Print(msg)
	return msg
}

// I prints an info message to stdout.
func I(format string, args ...interface{}) string {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.Grow(len(consts.BlueInfo) + len(format) + len("\n") + (len(args) * 32))
	b.WriteString(consts.BlueInfo)
	writeMessage(&b, format, args)
	b.WriteString("\n")

	msg := b.String()
	fmt.Print(msg)
	return msg
}

// P prints a plain, untagged message to stdout.
func P(format string, args ...interface{}) string {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.Grow(len(format) + len("\n") + (len(args) * 32))
	writeMessage(&b, format, args)
	b.WriteString("\n")

	msg := b.String()
	fmt.Print(msg)
	return msg
}

// D prints a debug message with a caller tag when l is within the active Level.
func D(l int, format string, args ...interface{}) string {
	if l > Level {
		return ""
	}

	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.Grow(len(consts.YellowDebug) + len(format) + (len(args) * 32))
	b.WriteString(consts.YellowDebug)
	writeMessage(&b, format, args)
	writeCallerTag(&b)

	msg := b.String()
	fmt.Print(msg)
	return msg
}

// writeMessage writes the formatted message body.
func writeMessage(b *strings.Builder, format string, args []interface{}) {
	if len(args) != 0 && args != nil {
		fmt.Fprintf(b, format, args...)
	} else {
		b.WriteString(format)
	}
}

// writeCallerTag appends a [Function - File : Line] tag for the logging call site.
func writeCallerTag(b *strings.Builder) {
	pc, file, line, _ := runtime.Caller(2)
	file = filepath.Base(file)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	b.WriteRune('[')
	b.WriteString(consts.ColorBlue)
	b.WriteString("Function: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(funcName)
	b.WriteString(" - ")
	b.WriteString(consts.ColorBlue)
	b.WriteString("File: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(file)
	b.WriteString(" : ")
	b.WriteString(consts.ColorBlue)
	b.WriteString("Line: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(strconv.Itoa(line))
	b.WriteString("]\n")
}
