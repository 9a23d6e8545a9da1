package upload

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/dfgiraldo/pqr-pipeline/constants"
)

// BuildKey constructs the object-storage key for one claim file:
// {base}/{empresa_folder}/01_raw_data/oficina_virtual/{sgc}/{tipo_archivo}/{archivo}
func BuildKey(base string, empresa constants.Company, sgc, filename string) string {
	kind := constants.ClassifyFile(filename)
	return path.Join(base, empresa.Folder(), "01_raw_data", "oficina_virtual", sgc, string(kind), filename)
}

// FileSHA256 streams a file through SHA-256 and returns the hex digest.
func FileSHA256(p string) (string, error) {
	f, err := os.Open(p)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", p, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", p, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
