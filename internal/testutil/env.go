package testutil

import (
	"os"
	"testing"
)

// localeVars are the variables that decide colcrt's charset and log level.
var localeVars = []string{"LC_ALL", "LC_CTYPE", "LANG", "COLCRT_CHARSET", "COLCRT_LOG_LEVEL"}

// CleanEnv unsets every locale and colcrt variable for the rest of the test,
// then applies kv as key, value pairs. Previous values come back on cleanup.
func CleanEnv(t *testing.T, kv ...string) {
    t.Helper()
    for _, k := range localeVars {
        t.Setenv(k, "")
        _ = os.Unsetenv(k)
    }
    for i := 0; i+1 < len(kv); i += 2 {
        t.Setenv(kv[i], kv[i+1])
    }
}
