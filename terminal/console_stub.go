//go:build !windows

package terminal

import "errors"

func newConsoleBackend() (Backend, error) {
	return nil, errors.New("terminal: console backend requires Windows")
}
