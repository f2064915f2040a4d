package main

// Exit codes, stable so scripts can branch on them.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing config, invalid paths)
	ExitDataError   = 3 // Data error (malformed citekey, bad input)
	ExitNoPDF       = 4 // No publication with a PDF matches the citekey
)
