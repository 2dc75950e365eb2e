package version

// Version is the application version reported by the system endpoints.
var Version = "1.2.0"
