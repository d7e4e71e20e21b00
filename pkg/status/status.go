// Package status models the two-layer status code of station session
// operations: the transport layer (did the control-channel call itself go
// through) and the application layer (what the station reported). The two
// are validated independently and never conflated.
package status

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// TransportStatus is the control-channel result of a session operation.
// Zero means success; any other value is a failure code.
type TransportStatus uint32

const (
	TransportSuccess TransportStatus = 0x00000000

	// TransportFailure is the generic failure code used when no more
	// specific code is available.
	TransportFailure TransportStatus = 0x80000001
)

// Succeeded reports whether the transport-level call went through.
func (s TransportStatus) Succeeded() bool {
	return s == TransportSuccess
}

// AppStatus is the application-level status object reported by the station
// for a single session operation.
type AppStatus struct {
	Code    uint32
	Message string
}

// Succeeded reports whether the station-reported code indicates success.
func (s AppStatus) Succeeded() bool {
	return s.Code == 0
}

// ErrorCode returns the station-reported error code.
func (s AppStatus) ErrorCode() uint32 {
	return s.Code
}

// ErrorString returns the station-reported error message, empty when the
// station supplied none.
func (s AppStatus) ErrorString() string {
	return s.Message
}

// Validator checks session operation outcomes and emits a diagnostic block
// for failures.
type Validator struct {
	out io.Writer
}

// NewValidator creates a validator writing diagnostics to out. A nil out
// falls back to stdout.
func NewValidator(out io.Writer) *Validator {
	if out == nil {
		out = os.Stdout
	}
	return &Validator{out: out}
}

// Validate reports whether the operation succeeded on BOTH layers: a
// successful transport carrying a failed application code is a failure, and
// vice versa. On failure a diagnostic block is written with both codes as
// 8-digit zero-padded hex plus the application error message when present.
//
// The block is rendered into a private buffer and emitted with a single
// Write, so the caller's stream and formatting are never left in a modified
// state.
func (v *Validator) Validate(transport TransportStatus, app AppStatus) bool {
	success := transport.Succeeded() && app.Succeeded()
	if success {
		return true
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, " >> ERROR <<\n")
	fmt.Fprintf(&buf, "Transport Error: 0x%08x\n", uint32(transport))
	fmt.Fprintf(&buf, "Station Error: 0x%08x\n", app.ErrorCode())
	if app.ErrorString() != "" {
		fmt.Fprintf(&buf, "Station Error: %s\n", app.ErrorString())
	}
	fmt.Fprintf(&buf, "\n")
	v.out.Write(buf.Bytes())

	return false
}
