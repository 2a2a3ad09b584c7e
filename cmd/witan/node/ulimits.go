package node

import "syscall"

// SetUlimits raises the open file limit to the configured value, badger
// keeps one file descriptor per vlog file and the default soft limit is
// too low for four stores.
func (l *NodeCommand) SetUlimits() error {
	rLimit := syscall.Rlimit{
		Max: l.conf.UlimitNOFile,
		Cur: l.conf.UlimitNOFile,
	}
	return syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
}
