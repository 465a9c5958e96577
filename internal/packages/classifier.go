package packages

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Classify runs the structural pre-check over an uploaded archive and
// returns a Verdict. It never fails: a filename without the .zip extension
// and unreadable archive bytes both produce negative verdicts, so the
// caller always has a renderable result. The function is a pure, read-only
// function of its input; classifying the same bytes twice yields
// identical verdicts.
func Classify(filename string, data []byte) Verdict {
	if !strings.EqualFold(filepath.Ext(filename), ".zip") {
		return Verdict{
			Message:           fmt.Sprintf("%s is not a taxonomy package: upload must be a ZIP archive", filename),
			FoundCategories:   []string{},
			MissingCategories: []string{},
		}
	}

	listing, err := ReadListing(data)
	if err != nil {
		return Verdict{
			Message:           "taxonomy package could not be read: the file is corrupt or not a valid ZIP archive",
			FoundCategories:   []string{},
			MissingCategories: []string{},
		}
	}

	convention := DetectConvention(listing)
	diagnostics := Diagnostics{
		TotalFiles:  len(listing.Files),
		Directories: listing.Directories,
		Convention:  convention,
	}

	switch convention {
	case ConventionEBA:
		return classifyEBA(listing, diagnostics)
	case ConventionTraditional:
		return classifyTraditional(listing, diagnostics)
	case ConventionUnknown:
		return classifyUnknown(listing, diagnostics)
	}

	// unreachable: DetectConvention returns a member of the enum above
	return classifyUnknown(listing, diagnostics)
}

// classifyEBA applies the lenient two-requirement gate: at least one schema
// file and at least one linkbase-named .xml file. The six-category table is
// evaluated for reporting detail only and does not gate validity, so a
// valid verdict may still list missing categories.
func classifyEBA(listing *Listing, diagnostics Diagnostics) Verdict {
	found, missing := ebaPolicy.Evaluate(listing.Files)

	hasSchema := slices.ContainsFunc(listing.Files, isSchemaFile)
	hasLinkbase := slices.ContainsFunc(listing.Files, ebaLinkbaseHint)

	switch {
	case !hasSchema:
		// schema absence takes priority even when linkbases are also missing
		return Verdict{
			Message:           "EBA v4 taxonomy package is missing XML Schema (.xsd) files",
			FoundCategories:   found,
			MissingCategories: []string{"XML Schema files"},
			Diagnostics:       diagnostics,
		}
	case !hasLinkbase:
		return Verdict{
			Message:           "EBA v4 taxonomy package contains no recognizable linkbase files",
			FoundCategories:   found,
			MissingCategories: []string{"Linkbase files"},
			Diagnostics:       diagnostics,
		}
	default:
		return Verdict{
			IsValid:           true,
			Message:           fmt.Sprintf("EBA v4 taxonomy package accepted: %d files with schema and linkbase content", len(listing.Files)),
			FoundCategories:   found,
			MissingCategories: missing,
			Diagnostics:       diagnostics,
		}
	}
}

// classifyTraditional applies the strict table: every pattern must match.
func classifyTraditional(listing *Listing, diagnostics Diagnostics) Verdict {
	found, missing := traditionalPolicy.Evaluate(listing.Files)

	if len(missing) > 0 {
		return Verdict{
			Message:           "traditional taxonomy package is incomplete: missing " + strings.Join(missing, ", "),
			FoundCategories:   found,
			MissingCategories: missing,
			Diagnostics:       diagnostics,
		}
	}

	return Verdict{
		IsValid:           true,
		Message:           fmt.Sprintf("traditional taxonomy package accepted: all required artifact categories present across %d files", len(listing.Files)),
		FoundCategories:   found,
		MissingCategories: missing,
		Diagnostics:       diagnostics,
	}
}

// classifyUnknown is the coarse fallback: any schema file plus any XML file
// is accepted with lower confidence.
func classifyUnknown(listing *Listing, diagnostics Diagnostics) Verdict {
	hasSchema := slices.ContainsFunc(listing.Files, isSchemaFile)
	hasXML := slices.ContainsFunc(listing.Files, isXMLFile)

	if hasSchema && hasXML {
		return Verdict{
			IsValid:           true,
			Message:           "package structure is not a recognized convention, but schema and XML content are present; accepted with low confidence",
			FoundCategories:   []string{"Schema files", "XML files"},
			MissingCategories: []string{},
			Diagnostics:       diagnostics,
		}
	}

	return Verdict{
		Message:           "no recognizable taxonomy structure found in package",
		FoundCategories:   []string{},
		MissingCategories: []string{"Schema files", "Linkbase files"},
		Diagnostics:       diagnostics,
	}
}
