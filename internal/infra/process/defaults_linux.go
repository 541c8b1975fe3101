//go:build linux

package process

// pkill -x matches the 15-byte comm name exactly. setsid -f detaches the
// relaunched application so it outlives this process.
// commNameMax is the length of the kernel's comm field (TASK_COMM_LEN - 1).
const commNameMax = 15

func platformCommands() CommandSet {
	return CommandSet{
		Terminate: "pkill -x {name}",
		Launch:    "setsid -f {name}",
	}
}
