// Package terminal abstracts the host console behind a small capability
// interface so one grid model can drive incompatible platform APIs.
//
// Three backends are provided:
//   - terminfo (unix): capability-database escape sequences, raw stdin
//     parsing, SIGWINCH resize detection, xterm SGR mouse reporting
//   - console (windows): Win32 console API with 8-colour attributes and
//     console input records
//   - basic: reduced-capability fallback on tcell, no mouse support
//
// Backends cache the last colour/attribute state and cursor position they
// sent to the device, so redundant control traffic is never emitted.
package terminal
