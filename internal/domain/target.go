package domain

import (
	"fmt"
	"strings"
)

// DefaultTargetName is the application restarted when no target is configured.
// The same name is used to find running processes and to launch the application.
const DefaultTargetName = "OneDrive"

// Separator is the rule printed around each phase header.
const Separator = "----------------"

// ValidateTargetName rejects names that cannot identify a process.
func ValidateTargetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyTargetName
	}
	return nil
}

// KillingNotice announces the terminate phase.
func KillingNotice(name string) string {
	return fmt.Sprintf("Killing %s...", name)
}

// KilledNotice closes the terminate phase.
func KilledNotice(name string) string {
	return fmt.Sprintf("%s Killed", name)
}

// OpeningNotice announces the launch phase.
func OpeningNotice(name string) string {
	return fmt.Sprintf("Opening %s...", name)
}

// OpenedNotice closes the launch phase.
func OpenedNotice(name string) string {
	return fmt.Sprintf("%s open", name)
}
