package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFullNameGivenNameLast(t *testing.T) {
	first, last := SplitFullName("Nguyen Van An", GivenNameLast)
	assert.Equal(t, "An", first)
	assert.Equal(t, "Nguyen Van", last)
}

func TestSplitFullNameGivenNameFirst(t *testing.T) {
	first, last := SplitFullName("Ada Lovelace King", GivenNameFirst)
	assert.Equal(t, "Ada", first)
	assert.Equal(t, "Lovelace King", last)
}

func TestSplitFullNameSingleToken(t *testing.T) {
	first, last := SplitFullName("Cher", GivenNameLast)
	assert.Equal(t, "Cher", first)
	assert.Empty(t, last)
}

func TestSplitFullNameEmpty(t *testing.T) {
	first, last := SplitFullName("  ", GivenNameLast)
	assert.Empty(t, first)
	assert.Empty(t, last)
}

func TestJoinName(t *testing.T) {
	assert.Equal(t, "Nguyen Van An", JoinName("Nguyen Van", "An"))
	assert.Equal(t, "Cher", JoinName("", "Cher"))
}
