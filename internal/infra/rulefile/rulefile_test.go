//go:build unit

package rulefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"grooming-salon/internal/domain/booking"
	"grooming-salon/internal/domain/catalog"
	"grooming-salon/internal/infra/rulefile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    booking.RuleTable
		wantErr string
	}{
		{
			name: "ordered rules",
			input: `
[[rule]]
name = "full-set"
required_tags = ["bath", "partial-groom", "face-trim"]
result_hours = 1.5

[[rule]]
name = "bath+partial-groom"
required_tags = ["bath", "partial-groom"]
result_hours = 1
`,
			want: booking.RuleTable{
				{Name: "full-set", RequiredTags: []catalog.Tag{catalog.TagBath, catalog.TagPartialGroom, catalog.TagFaceTrim}, ResultHours: 1.5},
				{Name: "bath+partial-groom", RequiredTags: []catalog.Tag{catalog.TagBath, catalog.TagPartialGroom}, ResultHours: 1},
			},
		},
		{
			name:  "no rules",
			input: "",
			want:  booking.RuleTable{},
		},
		{
			name: "unknown tag",
			input: `
[[rule]]
required_tags = ["nails"]
result_hours = 1
`,
			wantErr: "invalid combination rule",
		},
		{
			name: "non-positive hours",
			input: `
[[rule]]
required_tags = ["bath"]
result_hours = 0
`,
			wantErr: "invalid combination rule",
		},
		{
			name: "misspelled key",
			input: `
[[rule]]
required_tag = ["bath"]
result_hours = 1
`,
			wantErr: "unknown rule key",
		},
		{
			name:    "broken toml",
			input:   `[[rule]`,
			wantErr: "failed to parse rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rulefile.Parse(tt.input)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses the built-in table", func(t *testing.T) {
		got, err := rulefile.Load("")
		require.NoError(t, err)
		assert.Equal(t, booking.DefaultRules(), got)
	})

	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.toml")
		content := "[[rule]]\nname = \"bath-only\"\nrequired_tags = [\"bath\"]\nresult_hours = 0.5\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		got, err := rulefile.Load(path)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 0.5, got[0].ResultHours)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := rulefile.Load(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err)
	})
}
