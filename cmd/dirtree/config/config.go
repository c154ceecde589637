package config

// Version is replaced at build time through -ldflags.
var Version = "dev"
