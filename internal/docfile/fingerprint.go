package docfile

import (
	"crypto/md5"
	"encoding/hex"
	"os"
)

// Fingerprint returns a stable content digest for the file at path, used only
// for change detection. An unreadable file yields "", which never matches a
// stored digest and therefore forces reprocessing.
func Fingerprint(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
