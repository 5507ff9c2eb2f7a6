// Package main provides the gxpdfcrypt command-line interface.
//
// gxpdfcrypt demonstrates the Standard Security Handler core end to end:
// encrypting and decrypting files, and classifying passwords against an
// already-encrypted one.
//
// Usage:
//
//	gxpdfcrypt [command] [flags]
//
// Available Commands:
//
//	encrypt     Encrypt a file with the Standard Security Handler
//	decrypt     Decrypt a file written by the encrypt command
//	validate    Classify a password against an encrypted file
//	version     Print version information
//
// Use "gxpdfcrypt [command] --help" for more information about a command.
package main

import (
	"os"

	"github.com/coregx/gxpdfcrypt/cmd/gxpdfcrypt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
