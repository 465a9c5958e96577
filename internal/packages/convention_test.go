package packages_test

import (
	"testing"

	"xbrlgate/internal/packages"
)

func TestDetectConvention(t *testing.T) {
	tests := []struct {
		name    string
		listing packages.Listing
		want    packages.Convention
	}{
		{
			name:    "eba directory entry",
			listing: packages.Listing{Directories: []string{"taxonomy/mod"}},
			want:    packages.ConventionEBA,
		},
		{
			name:    "eba directory at archive root",
			listing: packages.Listing{Directories: []string{"val"}},
			want:    packages.ConventionEBA,
		},
		{
			name:    "eba path marker without directory entries",
			listing: packages.Listing{Files: []string{"taxonomy/xsd/entry.xsd"}},
			want:    packages.ConventionEBA,
		},
		{
			name:    "eba marker at root of file path",
			listing: packages.Listing{Files: []string{"lab/labels_en.xml"}},
			want:    packages.ConventionEBA,
		},
		{
			name:    "folder name containing marker as substring is not a match",
			listing: packages.Listing{Files: []string{"syllabus/notes.xml"}},
			want:    packages.ConventionUnknown,
		},
		{
			name:    "traditional linkbase suffix",
			listing: packages.Listing{Files: []string{"entity_pre.xml"}},
			want:    packages.ConventionTraditional,
		},
		{
			name:    "traditional suffix is case-insensitive",
			listing: packages.Listing{Files: []string{"ENTITY_DEF.XML"}},
			want:    packages.ConventionTraditional,
		},
		{
			name: "eba takes priority over traditional",
			listing: packages.Listing{
				Directories: []string{"xsd"},
				Files:       []string{"entity_lab.xml"},
			},
			want: packages.ConventionEBA,
		},
		{
			name:    "suffix must terminate the filename",
			listing: packages.Listing{Files: []string{"entity_lab.xml.bak"}},
			want:    packages.ConventionUnknown,
		},
		{
			name:    "empty listing",
			listing: packages.Listing{},
			want:    packages.ConventionUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := packages.DetectConvention(&tt.listing); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}
