// Package version holds the application version string.
package version

// Version is the application version reported by the system endpoints.
const Version = "1.0.0"
