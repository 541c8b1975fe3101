//go:build windows

package process

// Names are not checked against a kernel length limit.
const commNameMax = 0

// The empty title argument keeps start from treating a quoted name as the window title.
func platformCommands() CommandSet {
	return CommandSet{
		Terminate: "taskkill /F /IM {name}.exe",
		Launch:    `cmd /C start "" {name}`,
	}
}
