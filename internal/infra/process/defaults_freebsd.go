//go:build freebsd

package process

// commNameMax is MAXCOMLEN, the length of p_comm.
const commNameMax = 19

func platformCommands() CommandSet {
	return CommandSet{
		Terminate: "pkill -x {name}",
		Launch:    "daemon {name}",
	}
}
