package logger

import "github.com/charmbracelet/log"

// Component-specific logger functions

// HTTP returns a logger for request handling.
func HTTP() *log.Logger {
	return WithField("component", "http")
}

// Store returns a logger for storage operations.
func Store() *log.Logger {
	return WithField("component", "store")
}

// Service returns a logger for to-do service operations.
func Service() *log.Logger {
	return WithField("component", "service")
}

// CLI returns a logger for CLI operations.
func CLI() *log.Logger {
	return WithField("component", "cli")
}
