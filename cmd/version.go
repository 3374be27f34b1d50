package cmd

// Version is the build version, set with
// -ldflags "-X github.com/timvw/pane-pick/cmd.Version=...".
var Version = "dev"
