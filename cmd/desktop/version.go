package main

import (
	"fmt"
	"runtime/debug"
)

// Various version related constants.
const (
	AppName    = "gochip8-desktop"
	AppVersion = "v0.3.0"
)

// Version returns program version information.
func Version() string {
	version := AppVersion
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	return fmt.Sprintf("%s %s", AppName, version)
}
