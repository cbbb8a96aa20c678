//go:build !windows

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "hkbind: the win32 hotkey backend is windows-only")
	os.Exit(1)
}
