// Package main is the entry point for the padding-oracle-cli application.
// It initializes the root command, registers the RSA and attack sub-commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	commands "padding_oracle_service/cmd/padding-oracle-cli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "padding-oracle-cli",
		Short: "Bleichenbacher PKCS#1 v1.5 padding oracle attack tool",
		Long: `padding-oracle-cli demonstrates Bleichenbacher's adaptive chosen-ciphertext
attack against RSA with PKCS#1 v1.5 encryption padding.

It can generate RSA key pairs, encrypt messages with textbook RSA and PKCS#1
v1.5 padding, and recover the plaintext of such a ciphertext from the public
key and a padding oracle alone. The oracle is instantiated locally from the
private key; it stands in for an external system that leaks whether a
ciphertext decrypts to a plaintext starting with 0x00 0x02.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := commands.InitAttackCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize attack commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
