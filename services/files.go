package services

import "strings"

// AllowedExtensions is the attachment allow-list. A candidate file is
// accepted iff its lowercased name ends with one of these suffixes.
var AllowedExtensions = []string{
	".step", ".stp", ".iges", ".igs", ".dxf", ".pdf", ".png", ".jpg", ".jpeg",
}

// AllowedFilename reports whether name passes the extension allow-list.
// The comparison is case-insensitive.
func AllowedFilename(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range AllowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// PartitionFiles splits a candidate batch into accepted and rejected
// files. Every candidate lands in exactly one of the two slices and the
// relative order within each is the input order. There is no partial
// acceptance of a single file.
func PartitionFiles(candidates []FileRef) (accepted, rejected []FileRef) {
	for _, f := range candidates {
		if AllowedFilename(f.Name) {
			accepted = append(accepted, f)
		} else {
			rejected = append(rejected, f)
		}
	}
	return accepted, rejected
}

// AllowedExtensionsLabel renders the allow-list for user-facing warnings,
// e.g. ".step, .stp, .iges, ...".
func AllowedExtensionsLabel() string {
	return strings.Join(AllowedExtensions, ", ")
}
