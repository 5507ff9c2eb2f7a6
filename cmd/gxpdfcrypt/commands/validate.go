package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/coregx/gxpdfcrypt/internal/security"
	"github.com/spf13/cobra"
)

var validatePassword string

var validateCmd = &cobra.Command{
	Use:   "validate FILE -p PASSWORD",
	Short: "Classify a password against an encrypted file",
	Long: `Run the Standard Security Handler's password validator against FILE
and print whether PASSWORD is the owner password, the user password, or
invalid, without writing any output file.

Examples:
  gxpdfcrypt validate secret.gxpc -p mypassword`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validatePassword, "password", "p", "", "Password to classify (required)")
	_ = validateCmd.MarkFlagRequired("password")
}

func runValidate(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	c, err := readContainer(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	_, classification, err := security.OpenSession(&c.dict, c.fileID, validatePassword)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	switch classification {
	case security.OwnerPassword:
		fmt.Println("owner")
	case security.UserPassword:
		fmt.Println("user")
	default:
		fmt.Println("invalid")
	}
	return nil
}
