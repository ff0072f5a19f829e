package debug

import (
	"log"
	"os"
)

// Enabled controls whether debug messages are printed
var Enabled = false

// EnvVar turns on debug output when set to "1".
const EnvVar = "RALPH_DEBUG"

// Init reads EnvVar. It runs after .env has been loaded so the file can
// switch debugging on.
func Init() {
	if os.Getenv(EnvVar) == "1" {
		Enabled = true
	}
	if Enabled {
		log.Printf("[DEBUG] Debug mode enabled")
	}
}

// Log prints a debug message if debug mode is enabled
func Log(format string, args ...any) {
	if Enabled {
		log.Printf("[DEBUG] "+format, args...)
	}
}
