package packages

import (
	"slices"
	"strings"
)

// ArtifactPattern describes one required category of file inside a package:
// a predicate over a file path paired with the category's display label.
type ArtifactPattern struct {
	Label string
	Match func(path string) bool
}

// Policy is an ordered table of artifact patterns for one packaging
// convention. Tables are static data so they can be tested independently
// of convention detection.
type Policy []ArtifactPattern

// Evaluate partitions the policy's labels by whether at least one file
// matches each pattern, preserving table order in both lists.
func (p Policy) Evaluate(files []string) (found, missing []string) {
	found = []string{}
	missing = []string{}
	for _, pattern := range p {
		if slices.ContainsFunc(files, pattern.Match) {
			found = append(found, pattern.Label)
		} else {
			missing = append(missing, pattern.Label)
		}
	}
	return found, missing
}

// PolicyFor returns the static policy table for a convention.
func PolicyFor(c Convention) Policy {
	switch c {
	case ConventionEBA:
		return ebaPolicy
	case ConventionTraditional:
		return traditionalPolicy
	case ConventionUnknown:
		return nil
	}
	return nil
}

// ebaPolicy is the six-category EBA v4 reporting table. It populates the
// found/missing detail of a verdict; validity for EBA packages is gated by
// the lenient two-requirement check in classifyEBA, not by this table.
var ebaPolicy = Policy{
	{Label: "XML Schema files", Match: isSchemaFile},
	{Label: "Label linkbase files", Match: xmlContaining("lab", "labels")},
	{Label: "Presentation linkbase files", Match: xmlContaining("pre", "presentation")},
	{Label: "Calculation linkbase files", Match: xmlContaining("cal", "calculation")},
	{Label: "Definition linkbase files", Match: xmlContaining("def", "definition")},
	{Label: "Module definition files", Match: inFolder("mod")},
}

// traditionalPolicy is the strict two-category table: both categories must
// match for a traditional package to be valid.
var traditionalPolicy = Policy{
	{Label: "XML Schema files", Match: isSchemaFile},
	{Label: "Linkbase files", Match: traditionalSuffix.MatchString},
}

// ebaLinkbaseHint is the lenient linkbase requirement for EBA packages:
// any .xml file whose path mentions a linkbase name or abbreviation.
var ebaLinkbaseHint = xmlContaining(
	"lab", "pre", "cal", "def",
	"labels", "presentation", "calculation", "definition",
)

func isSchemaFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".xsd")
}

func isXMLFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".xml")
}

// xmlContaining returns a predicate matching .xml files whose path contains
// any of the given substrings. Substring matching is case-sensitive.
func xmlContaining(subs ...string) func(string) bool {
	return func(path string) bool {
		if !isXMLFile(path) {
			return false
		}
		for _, sub := range subs {
			if strings.Contains(path, sub) {
				return true
			}
		}
		return false
	}
}

// inFolder returns a predicate matching paths under the named folder at
// any depth, including the archive root.
func inFolder(name string) func(string) bool {
	marker := "/" + name + "/"
	return func(path string) bool {
		return strings.Contains("/"+path, marker)
	}
}
