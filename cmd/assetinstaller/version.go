package main

// Version is the release version, overridable at build time with
// -ldflags "-X main.Version=...".
var Version = "dev"
