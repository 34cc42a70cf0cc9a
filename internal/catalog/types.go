// Package catalog defines the detectable-applications domain types and the
// client that fetches them from the Discord API.
package catalog

// OSWindows is the os identifier the catalog uses for Windows builds.
const OSWindows = "win32"

// Executable is a single binary attached to a detectable application.
type Executable struct {
	OS         string `json:"os"`
	Name       string `json:"name"`
	IsLauncher bool   `json:"is_launcher"`
}

// Application is one entry in the detectable-applications catalog. The remote
// schema carries many more fields; only the ones the projection needs are
// decoded.
type Application struct {
	Name        string       `json:"name"`
	Executables []Executable `json:"executables"`
}

// Game is the projected output shape consumed downstream: the application
// name and one representative Windows executable.
type Game struct {
	Name string `json:"name"`
	Exe  string `json:"exe"`
}

// HasWindowsExecutable reports whether any of the application's executables
// targets win32.
func (a Application) HasWindowsExecutable() bool {
	for _, exe := range a.Executables {
		if exe.OS == OSWindows {
			return true
		}
	}
	return false
}

// WindowsExecutable selects the representative win32 binary: the first win32
// executable that is not a launcher, falling back to the first win32
// executable regardless of launcher flag. Both passes respect the catalog's
// own executable order. ok is false when no win32 executable exists.
func (a Application) WindowsExecutable() (exe Executable, ok bool) {
	for _, e := range a.Executables {
		if e.OS == OSWindows && !e.IsLauncher {
			return e, true
		}
	}
	for _, e := range a.Executables {
		if e.OS == OSWindows {
			return e, true
		}
	}
	return Executable{}, false
}
