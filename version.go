package docket

// Version is the current Docket release.
var Version = "0.2.0"
