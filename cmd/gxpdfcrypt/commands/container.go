package commands

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/coregx/gxpdfcrypt/internal/security"
)

// containerMagic identifies files written by the encrypt command. This CLI
// is a thin demonstration harness over the Standard Security Handler core,
// not a competing PDF reader/writer (spec.md §1, SPEC_FULL.md §9): rather
// than emit real PDF byte syntax, it frames the single encrypted object as
// a small self-describing binary envelope carrying V, R, Length,
// EncryptMetadata, O, U, P, the document ID, and the ciphertext, which is
// sufficient to round-trip encrypt/decrypt/validate end to end. Filter and
// the V=4 crypt-filter entries are not stored: readContainer sets Filter to
// Standard and, for V=4, rebuilds /StdCF with CFM AESV2.
var containerMagic = [5]byte{'G', 'X', 'P', 'C', '1'}

// container is the on-disk representation written by encrypt and read by
// decrypt/validate.
type container struct {
	dict       security.EncryptionDictionary
	fileID     []byte
	ciphertext []byte
}

func writeContainer(w io.Writer, c container) error {
	buf := new(bytes.Buffer)
	buf.Write(containerMagic[:])

	writeUint8(buf, uint8(c.dict.V))
	writeUint8(buf, uint8(c.dict.R))
	writeUint16(buf, uint16(c.dict.Length))
	writeBool(buf, c.dict.EncryptMetadata)
	writeBytes(buf, c.dict.O)
	writeBytes(buf, c.dict.U)
	writeInt32(buf, c.dict.P)
	writeBytes(buf, c.fileID)
	writeBytes(buf, c.ciphertext)

	_, err := w.Write(buf.Bytes())
	return err
}

func readContainer(r io.Reader) (container, error) {
	var c container

	data, err := io.ReadAll(r)
	if err != nil {
		return c, fmt.Errorf("read container: %w", err)
	}

	buf := bytes.NewReader(data)
	var magic [5]byte
	if _, err := io.ReadFull(buf, magic[:]); err != nil {
		return c, fmt.Errorf("read magic: %w", err)
	}
	if magic != containerMagic {
		return c, fmt.Errorf("not a gxpdfcrypt container (bad magic %q)", magic)
	}

	v, err := readUint8(buf)
	if err != nil {
		return c, err
	}
	r8, err := readUint8(buf)
	if err != nil {
		return c, err
	}
	length, err := readUint16(buf)
	if err != nil {
		return c, err
	}
	meta, err := readBool(buf)
	if err != nil {
		return c, err
	}
	o, err := readBytes(buf)
	if err != nil {
		return c, err
	}
	u, err := readBytes(buf)
	if err != nil {
		return c, err
	}
	p, err := readInt32(buf)
	if err != nil {
		return c, err
	}
	fileID, err := readBytes(buf)
	if err != nil {
		return c, err
	}
	ciphertext, err := readBytes(buf)
	if err != nil {
		return c, err
	}

	c.dict = security.EncryptionDictionary{
		Filter:          "Standard",
		V:               int(v),
		R:               int(r8),
		Length:          int(length),
		O:               o,
		U:               u,
		P:               p,
		EncryptMetadata: meta,
	}
	if c.dict.V == 4 {
		c.dict.CF = map[string]security.CryptFilter{
			"StdCF": {CFM: "AESV2", Length: int(length) / 8, AuthEvent: "DocOpen"},
		}
		c.dict.StmF = "StdCF"
		c.dict.StrF = "StdCF"
	}
	c.fileID = fileID
	c.ciphertext = ciphertext

	return c, nil
}

func newDocumentID() ([]byte, error) {
	id := make([]byte, 16)
	if _, err := rand.Read(id); err != nil {
		return nil, fmt.Errorf("generate document ID: %w", err)
	}
	return id, nil
}

func writeUint8(buf *bytes.Buffer, v uint8)   { buf.WriteByte(v) }
func writeUint16(buf *bytes.Buffer, v uint16) { _ = binary.Write(buf, binary.BigEndian, v) }
func writeInt32(buf *bytes.Buffer, v int32)   { _ = binary.Write(buf, binary.BigEndian, v) }
func writeBool(buf *bytes.Buffer, v bool) {
	if v {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}
func writeBytes(buf *bytes.Buffer, v []byte) {
	_ = binary.Write(buf, binary.BigEndian, uint32(len(v)))
	buf.Write(v)
}

func readUint8(r *bytes.Reader) (uint8, error) {
	return r.ReadByte()
}

func readUint16(r *bytes.Reader) (uint16, error) {
	var v uint16
	err := binary.Read(r, binary.BigEndian, &v)
	return v, err
}

func readInt32(r *bytes.Reader) (int32, error) {
	var v int32
	err := binary.Read(r, binary.BigEndian, &v)
	return v, err
}

func readBool(r *bytes.Reader) (bool, error) {
	b, err := r.ReadByte()
	return b != 0, err
}

func readBytes(r *bytes.Reader) ([]byte, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("read %d bytes: %w", n, err)
	}
	return out, nil
}
