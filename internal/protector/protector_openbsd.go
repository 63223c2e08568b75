//go:build openbsd

// Package protector restricts fzmatch's own syscall surface once startup
// is done.
package protector

import "golang.org/x/sys/unix"

// Protect pledges the promises fzmatch still needs once options are parsed
// and candidates have been read, before the cache and the terminal picker
// are set up: basic stdio, read-only file access, and the tty. No exec or
// network promises remain since candidates only ever arrive over stdin.
func Protect() {
	unix.PledgePromises("stdio rpath tty")
}
