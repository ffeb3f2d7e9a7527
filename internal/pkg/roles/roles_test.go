package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTable() *Table {
	return NewTable(Config{
		ExemptRoles: []string{"ADMIN", "STL", "TL", "TTL", "ASS. TL", "CLEANING", "JANITOR", "ER"},
		PooledRoles: []string{"ADMIN", "STL", "TL", "TTL", "ASS. TL"},
		ExemptIDs:   []string{"1007"},
		MaskedIDs:   []string{"1001", "1283"},
		MaskDisplay: "ER",
	})
}

func TestIsExempt(t *testing.T) {
	table := testTable()

	assert.True(t, table.IsExempt("ADMIN", "2001"))
	assert.True(t, table.IsExempt(" admin ", "2001"), "role names are case and whitespace insensitive")
	assert.True(t, table.IsExempt("Warehouse", "1007"), "exempt ID wins regardless of role")
	assert.False(t, table.IsExempt("Warehouse", "2001"))
	assert.False(t, table.IsExempt("", "2001"))
}

func TestIsPooled(t *testing.T) {
	table := testTable()

	assert.True(t, table.IsPooled("TL"))
	assert.True(t, table.IsPooled("ass. tl"))
	assert.False(t, table.IsPooled("CLEANING"), "cleaning is exempt but not pooled")
	assert.False(t, table.IsPooled("Warehouse"))
}

func TestDisplayRole(t *testing.T) {
	table := testTable()

	assert.Equal(t, "ER", table.DisplayRole("1001", "ADMIN"))
	assert.Equal(t, "ADMIN", table.DisplayRole("2001", "admin"))
}
