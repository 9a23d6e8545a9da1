package upload

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/dfgiraldo/pqr-pipeline/constants"
)

func TestBuildKey(t *testing.T) {
	tests := []struct {
		name     string
		empresa  constants.Company
		filename string
		want     string
	}{
		{
			"main document afinia",
			constants.CompanyAfinia,
			"SGC-1_escrito.pdf",
			"Central_De_Escritos/Afinia/01_raw_data/oficina_virtual/SGC-1/documento_principal/SGC-1_escrito.pdf",
		},
		{
			"metadata aire brand folder",
			constants.CompanyAire,
			"SGC-1_data_x.json",
			"Central_De_Escritos/Air-e/01_raw_data/oficina_virtual/SGC-1/metadata/SGC-1_data_x.json",
		},
		{
			"attachment",
			constants.CompanyAfinia,
			"SGC-1_adjunto_1.jpg",
			"Central_De_Escritos/Afinia/01_raw_data/oficina_virtual/SGC-1/adjuntos/SGC-1_adjunto_1.jpg",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildKey("Central_De_Escritos", tt.empresa, "SGC-1", tt.filename)
			if got != tt.want {
				t.Errorf("BuildKey = %q\nwant       %q", got, tt.want)
			}
		})
	}
}

func TestFileSHA256(t *testing.T) {
	p := filepath.Join(t.TempDir(), "f.pdf")
	content := []byte("contenido del escrito")
	if err := os.WriteFile(p, content, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FileSHA256(p)
	if err != nil {
		t.Fatal(err)
	}
	sum := sha256.Sum256(content)
	if want := hex.EncodeToString(sum[:]); got != want {
		t.Errorf("FileSHA256 = %s, want %s", got, want)
	}

	if _, err := FileSHA256(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing file must return an error")
	}
}
