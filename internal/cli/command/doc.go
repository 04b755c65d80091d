// Package command defines the tokrand CLI commands.
//
// Global flags are parsed once in the App's Before hook, which loads the
// configuration and builds the entropy Source and token Generator shared
// by every command.
package command
