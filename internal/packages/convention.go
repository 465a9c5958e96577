package packages

import (
	"regexp"
	"slices"
	"strings"
)

// Convention identifies the packaging layout of a taxonomy archive.
type Convention string

const (
	// ConventionEBA is the EBA v4 layout with mod/val/lab/xsd folders.
	ConventionEBA Convention = "eba_v4"
	// ConventionTraditional is the flat layout with _lab/_pre/_cal/_def
	// suffixed linkbase files.
	ConventionTraditional Convention = "traditional"
	// ConventionUnknown is the fallback when neither signal is present.
	ConventionUnknown Convention = "unknown"
)

// ebaSegments are the folder names that mark an EBA v4 package layout.
var ebaSegments = []string{"mod", "val", "lab", "xsd"}

// ebaMarkers are the same folder names as in-path markers for archives
// whose packer omitted explicit directory entries.
var ebaMarkers = []string{"/mod/", "/val/", "/lab/", "/xsd/"}

// traditionalSuffix matches the classic linkbase file naming scheme:
// underscore, linkbase abbreviation, .xml, case-insensitive.
var traditionalSuffix = regexp.MustCompile(`(?i)_(lab|pre|cal|def)\.xml$`)

// DetectConvention classifies a listing into a packaging convention.
// EBA evidence strictly takes priority over the traditional suffix check:
// EBA packages may incidentally also contain traditionally-suffixed files.
func DetectConvention(listing *Listing) Convention {
	for _, dir := range listing.Directories {
		for _, segment := range strings.Split(dir, "/") {
			if slices.Contains(ebaSegments, segment) {
				return ConventionEBA
			}
		}
	}

	for _, file := range listing.Files {
		// leading "/" so that a root-level "lab/..." path counts as
		// a path-component match
		rooted := "/" + file
		for _, marker := range ebaMarkers {
			if strings.Contains(rooted, marker) {
				return ConventionEBA
			}
		}
	}

	for _, file := range listing.Files {
		if traditionalSuffix.MatchString(file) {
			return ConventionTraditional
		}
	}

	return ConventionUnknown
}
