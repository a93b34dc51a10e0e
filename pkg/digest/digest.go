package digest

import (
	"crypto/md5" //nolint:gosec // md5 is the wire format for cache busting, not a security boundary
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

// chunkSize bounds the read buffer so hashing never loads a whole file
const chunkSize = 4096

// FileMD5 returns the md5 digest of the file content as a 32-char hex
// string. The file is read in fixed-size chunks, so memory use stays
// constant regardless of file size. Identical bytes always produce an
// identical digest, on any platform.
func FileMD5(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from a directory listing we produced
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := md5.New() //nolint:gosec // see import note
	buf := make([]byte, chunkSize)
	for {
		n, readErr := f.Read(buf)
		if n > 0 {
			_, _ = h.Write(buf[:n]) // hash.Hash writes never fail
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return "", fmt.Errorf("read %s: %w", path, readErr)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
