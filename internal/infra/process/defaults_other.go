//go:build !darwin && !linux && !freebsd && !windows

package process

// Names are not checked against a kernel length limit.
const commNameMax = 0

func platformCommands() CommandSet {
	return CommandSet{}
}
