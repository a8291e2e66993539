package version

// AppVersion is overridden at build time with
// -ldflags "-X colcrt/internal/version.AppVersion=...".
var AppVersion = "dev"
