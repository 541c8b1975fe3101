//go:build darwin

package process

// Names are not checked against a kernel length limit.
const commNameMax = 0

// killall matches the process name exactly; open -a resolves the
// application through Launch Services and foregrounds it if running.
func platformCommands() CommandSet {
	return CommandSet{
		Terminate: "killall {name}",
		Launch:    "open -a {name}",
	}
}
