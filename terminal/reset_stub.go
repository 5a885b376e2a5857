//go:build !unix

package terminal

func restoreTerminalMode() {}
