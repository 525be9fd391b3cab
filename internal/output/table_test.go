package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	tbl := NewTable("A", "B").Row("1", "2").Row("3", "4")
	assert.Equal(t, 2, tbl.Len())

	out := tbl.String()
	for _, want := range []string{"A", "B", "1", "2", "3", "4"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderMemberTable(t *testing.T) {
	t.Run("inventory without targets", func(t *testing.T) {
		out := RenderMemberTable([]MemberRow{
			{Kind: "lib", Name: "lib/a.jar", CRC32: "0000002a", Size: "12"},
		})
		assert.Contains(t, out, "SIZE")
		assert.NotContains(t, out, "STATUS")
		assert.Contains(t, out, "lib/a.jar")
	})

	t.Run("status with targets", func(t *testing.T) {
		out := RenderMemberTable([]MemberRow{
			{Kind: "web", Name: "shop.war", CRC32: "0000002a", Target: "/srv/webapps", Status: StatusChanged},
		})
		assert.Contains(t, out, "STATUS")
		assert.Contains(t, out, "/srv/webapps")
		assert.Contains(t, out, StatusChanged)
	})
}
