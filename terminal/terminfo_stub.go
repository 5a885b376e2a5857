//go:build !unix

package terminal

import "errors"

func newTerminfoBackend() (Backend, error) {
	return nil, errors.New("terminal: terminfo backend requires a POSIX system")
}
