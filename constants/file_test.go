package constants

import "testing"

func TestClassifyFile(t *testing.T) {
	tests := []struct {
		filename string
		want     FileKind
	}{
		{"RAD-001_data_2024.json", FileKindMetadata},
		{"RAD-001_adjunto_1.pdf", FileKindAttachment},
		{"RAD-001_adjunto_foto.jpg", FileKindAttachment},
		{"RAD-001.pdf", FileKindDocument},
		{"escrito.docx", FileKindDocument},
		// the metadata marker only counts on json payloads
		{"RAD-001_data_2024.pdf", FileKindDocument},
	}
	for _, tt := range tests {
		if got := ClassifyFile(tt.filename); got != tt.want {
			t.Errorf("ClassifyFile(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{"pdf", "application/pdf"},
		{".json", "application/json"},
		{"JPG", "image/jpeg"},
		{"exe", "application/octet-stream"},
		{"", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := ContentTypeFor(tt.ext); got != tt.want {
			t.Errorf("ContentTypeFor(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}

func TestIsAllowedExt(t *testing.T) {
	for _, ext := range []string{"json", ".pdf", "JPEG", "png", "docx", "doc", "jpg"} {
		if !IsAllowedExt(ext) {
			t.Errorf("IsAllowedExt(%q) = false, want true", ext)
		}
	}
	for _, ext := range []string{"exe", "zip", ""} {
		if IsAllowedExt(ext) {
			t.Errorf("IsAllowedExt(%q) = true, want false", ext)
		}
	}
}

func TestCompanyFolder(t *testing.T) {
	tests := []struct {
		company Company
		want    string
	}{
		{CompanyAfinia, "Afinia"},
		{CompanyAire, "Air-e"},
	}
	for _, tt := range tests {
		if got := tt.company.Folder(); got != tt.want {
			t.Errorf("%s.Folder() = %q, want %q", tt.company, got, tt.want)
		}
	}
}

func TestParseCompany(t *testing.T) {
	if c, ok := ParseCompany("afinia"); !ok || c != CompanyAfinia {
		t.Errorf("ParseCompany(afinia) = (%v, %v)", c, ok)
	}
	if c, ok := ParseCompany(" AIRE "); !ok || c != CompanyAire {
		t.Errorf("ParseCompany( AIRE ) = (%v, %v)", c, ok)
	}
	if _, ok := ParseCompany("enel"); ok {
		t.Error("ParseCompany(enel) should fail")
	}
}
