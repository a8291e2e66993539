package system

import (
    "os"

    clog "github.com/charmbracelet/log"
)

// Logger is the shared diagnostic logger. It writes to stderr so that it never
// mixes with the filtered text on stdout. The level is raised or lowered from
// config at startup.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
    Prefix: "colcrt",
    Level:  clog.WarnLevel,
})
