// Package main provides the rolodex CLI, the interactive consumer of the
// contact record store.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rolodex:", err)
		os.Exit(exitSysError)
	}
}
