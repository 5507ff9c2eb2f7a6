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
	encryptPassword  string
	encryptOwner     string
	encryptAlgorithm string
	encryptOutput    string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt FILE -p PASSWORD -o OUTPUT",
	Short: "Encrypt a file with the Standard Security Handler",
	Long: `Encrypt a file's bytes, framed as a single PDF stream object, with
the Standard Security Handler.

Supports:
  - rc4-40  (V1/R2, 40-bit RC4)
  - rc4-128 (V2/R3, 128-bit RC4)
  - aes128  (V4/R4, 128-bit AES-CBC, default)

Examples:
  gxpdfcrypt encrypt secret.txt -p mypassword -o secret.gxpc
  gxpdfcrypt encrypt doc.bin -p user123 --owner admin456 -o protected.gxpc
  gxpdfcrypt encrypt legacy.bin -p pass --algorithm rc4-40 -o encrypted.gxpc`,
	Args: cobra.ExactArgs(1),
	RunE: runEncrypt,
}

func init() {
	encryptCmd.Flags().StringVarP(&encryptPassword, "password", "p", "", "User password (required)")
	encryptCmd.Flags().StringVar(&encryptOwner, "owner", "", "Owner password (defaults to the user password)")
	encryptCmd.Flags().StringVar(&encryptAlgorithm, "algorithm", "aes128", "Encryption: aes128, rc4-128, rc4-40")
	encryptCmd.Flags().StringVarP(&encryptOutput, "output", "o", "", "Output file (required)")
	_ = encryptCmd.MarkFlagRequired("password")
	_ = encryptCmd.MarkFlagRequired("output")
}

func parseAlgorithm(name string) (gxpdfcrypt.SecurityLevel, error) {
	switch name {
	case "rc4-40":
		return gxpdfcrypt.Rc4_40, nil
	case "rc4-128":
		return gxpdfcrypt.Rc4_128, nil
	case "aes128":
		return gxpdfcrypt.Aes_128, nil
	default:
		return gxpdfcrypt.None, fmt.Errorf("unknown algorithm %q (want aes128, rc4-128, or rc4-40)", name)
	}
}

func runEncrypt(_ *cobra.Command, args []string) error {
	level, err := parseAlgorithm(encryptAlgorithm)
	if err != nil {
		return err
	}

	plaintext, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	fileID, err := newDocumentID()
	if err != nil {
		return err
	}

	doc := pdfdoc.New(fileID)
	stream := pdfobj.NewStream(pdfobj.NewDictionary(), plaintext)
	doc.AddObject(pdfobj.NewIndirectObject(1, 0, stream))

	dict, err := gxpdfcrypt.Protect(doc, gxpdfcrypt.EncryptionOptions{
		Level:           level,
		UserPassword:    encryptPassword,
		OwnerPassword:   encryptOwner,
		Permissions:     gxpdfcrypt.PermissionAll,
		EncryptMetadata: true,
	})
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := writeContainer(buf, container{dict: *dict, fileID: doc.FirstID(), ciphertext: stream.Content()}); err != nil {
		return fmt.Errorf("write container: %w", err)
	}
	if err := os.WriteFile(encryptOutput, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", encryptOutput, err)
	}

	printVerbosef("encrypted %s -> %s (%s, R=%d, V=%d)", args[0], encryptOutput, encryptAlgorithm, dict.R, dict.V)
	return nil
}
