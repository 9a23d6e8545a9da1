package reconcile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
)

// sgcIndex maps numero_radicado -> numero_reclamo_sgc as declared by the
// scraper's processed JSON files.
type sgcIndex map[string]string

// buildSGCIndex scans every JSON file in the processed directory once and
// records each business key's declared SGC number. Unreadable files are
// skipped; missing keys simply stay unresolved.
func buildSGCIndex(dir string) sgcIndex {
	idx := sgcIndex{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return idx
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		for _, raw := range parseRecords(data) {
			radicado := stringField(raw, "numero_radicado")
			sgc := stringField(raw, "numero_reclamo_sgc")
			if radicado == "" || sgc == "" {
				continue
			}
			if _, seen := idx[radicado]; !seen {
				idx[radicado] = sgc
			}
		}
	}
	return idx
}

// globClaimFiles finds a claim's companion files by SGC filename prefix,
// keeping only the known extensions.
func globClaimFiles(dir, sgc string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, sgc+"*"))
	if err != nil {
		return nil
	}
	var files []string
	for _, m := range matches {
		if constants.IsAllowedExt(filepath.Ext(m)) {
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files
}

func parseRecords(data []byte) []entity.RawRecord {
	var list []entity.RawRecord
	if err := json.Unmarshal(data, &list); err == nil {
		return list
	}
	var single entity.RawRecord
	if err := json.Unmarshal(data, &single); err == nil {
		return []entity.RawRecord{single}
	}
	return nil
}

func stringField(raw entity.RawRecord, key string) string {
	if v, ok := raw[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
