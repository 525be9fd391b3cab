package ear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	from := Manifest{
		Libraries: []ManifestEntry{
			{Filename: "lib/a.jar", CRC32: "00000001", Size: 1},
			{Filename: "lib/b.jar", CRC32: "00000002", Size: 2},
			{Filename: "lib/gone.jar", CRC32: "00000003", Size: 3},
		},
		Modules: []ManifestModule{
			{Type: "web", Entry: &ManifestEntry{Filename: "shop.war", CRC32: "00000010", Size: 10}},
			{Type: "ejb"},
		},
	}
	to := Manifest{
		Libraries: []ManifestEntry{
			{Filename: "lib/a.jar", CRC32: "00000001", Size: 1},
			{Filename: "lib/b.jar", CRC32: "000000ff", Size: 2},
			{Filename: "lib/new.jar", CRC32: "00000004", Size: 4},
		},
		Modules: []ManifestModule{
			{Type: "web", Entry: &ManifestEntry{Filename: "shop.war", CRC32: "00000010", Size: 10}},
		},
	}

	c := Compare(from, to)
	assert.False(t, c.Empty())
	assert.Equal(t, []string{"lib:lib/new.jar"}, c.Added)
	assert.Equal(t, []string{"lib:lib/gone.jar"}, c.Removed)
	require.Len(t, c.Modified, 1)
	assert.Equal(t, "lib:lib/b.jar", c.Modified[0].Name)
	assert.Equal(t, "00000002", c.Modified[0].From.CRC32)
	assert.Equal(t, "000000ff", c.Modified[0].To.CRC32)
}

func TestCompare_Identical(t *testing.T) {
	m := Manifest{Libraries: []ManifestEntry{{Filename: "lib/a.jar", CRC32: "00000001"}}}
	assert.True(t, Compare(m, m).Empty())
}
