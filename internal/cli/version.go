package cli

import (
	"fmt"
	"io"

	appver "colcrt/internal/version"
)

func printVersion(w io.Writer) {
	// keep output simple for scripting
	fmt.Fprintf(w, "colcrt version %s\n", appver.AppVersion)
}
