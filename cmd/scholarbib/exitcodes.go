package main

// Exit codes
const (
	ExitSuccess     = 0 // Success, including an empty publication list
	ExitError       = 1 // General error (author fetch failure, runtime failure)
	ExitConfigError = 2 // Configuration error (missing file, parse error, missing key)
	ExitWriteError  = 3 // Output file could not be written
)
