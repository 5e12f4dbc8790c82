//go:build !mobile

package utils

import "os"

// MobileEmulateEnv forces mobile behavior on desktop builds when set to "1".
const MobileEmulateEnv = "PROPOSAL_MOBILE_EMULATE"

// IsMobile reports whether the app runs as an ebitenmobile binding. Desktop
// builds return false unless MobileEmulateEnv is set.
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
