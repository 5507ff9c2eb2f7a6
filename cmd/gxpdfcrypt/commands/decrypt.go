package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/coregx/gxpdfcrypt"
	"github.com/coregx/gxpdfcrypt/internal/pdfdoc"
	"github.com/coregx/gxpdfcrypt/internal/pdfobj"
	"github.com/spf13/cobra"
)

var (
	decryptPassword string
	decryptOutput   string
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt FILE -p PASSWORD -o OUTPUT",
	Short: "Decrypt a file written by the encrypt command",
	Long: `Reverse the container encrypt wrote: validate PASSWORD against the
stored encryption dictionary and, on a match, write the recovered
plaintext to OUTPUT.

Examples:
  gxpdfcrypt decrypt secret.gxpc -p mypassword -o secret.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runDecrypt,
}

func init() {
	decryptCmd.Flags().StringVarP(&decryptPassword, "password", "p", "", "Password to try (required)")
	decryptCmd.Flags().StringVarP(&decryptOutput, "output", "o", "", "Output file (required)")
	_ = decryptCmd.MarkFlagRequired("password")
	_ = decryptCmd.MarkFlagRequired("output")
}

func runDecrypt(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	c, err := readContainer(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	doc := pdfdoc.New(c.fileID)
	stream := pdfobj.NewStream(pdfobj.NewDictionary(), c.ciphertext)
	doc.AddObject(pdfobj.NewIndirectObject(1, 0, stream))

	classification, err := gxpdfcrypt.Open(doc, &c.dict, decryptPassword)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	if classification == gxpdfcrypt.Invalid {
		return fmt.Errorf("invalid password")
	}

	if err := os.WriteFile(decryptOutput, stream.Content(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", decryptOutput, err)
	}

	printVerbosef("decrypted %s -> %s (%s)", args[0], decryptOutput, classification)
	return nil
}
