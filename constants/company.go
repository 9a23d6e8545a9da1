package constants

import "strings"

// Company identifies one of the utility portals we consolidate records for.
type Company string

const (
	CompanyAfinia Company = "afinia"
	CompanyAire   Company = "aire"
)

// Companies lists every company the pipeline knows about, in batch order.
var Companies = []Company{CompanyAfinia, CompanyAire}

// folderOverrides holds display-folder names that do not follow the
// title-case convention (e.g. the brand spelling "Air-e").
var folderOverrides = map[Company]string{
	CompanyAire: "Air-e",
}

// ParseCompany validates a CLI/env company name.
func ParseCompany(s string) (Company, bool) {
	c := Company(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Companies {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// Folder returns the display folder used when building object-storage keys.
func (c Company) Folder() string {
	if f, ok := folderOverrides[c]; ok {
		return f
	}
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[0])) + string(c[1:])
}

func (c Company) String() string { return string(c) }
