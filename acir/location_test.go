package acir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationString(t *testing.T) {
	for _, loc := range []OpcodeLocation{
		NewAcirLocation(0),
		NewAcirLocation(42),
		NewBrilligLocation(3, 0),
		NewBrilligLocation(7, 12),
	} {
		parsed, err := ParseOpcodeLocation(loc.String())
		require.NoError(t, err)
		assert.Equal(t, loc, parsed)
	}
	assert.Equal(t, "7.12", NewBrilligLocation(7, 12).String())
	assert.Equal(t, "42", NewAcirLocation(42).String())
}

func TestParseLocationErrors(t *testing.T) {
	for _, s := range []string{"", "a", "1.", ".1", "1.2.3", "-1", "1.-2"} {
		_, err := ParseOpcodeLocation(s)
		assert.Error(t, err, s)
	}
}

func TestWithAcirIndex(t *testing.T) {
	assert.Equal(t, NewBrilligLocation(9, 4), NewBrilligLocation(2, 4).WithAcirIndex(9))
	assert.Equal(t, NewAcirLocation(9), NewAcirLocation(2).WithAcirIndex(9))
	assert.Equal(t, NewAcirLocation(9), OpcodeLocation{AcirIndex: 2, BrilligIndex: 4}.WithAcirIndex(9))
}

func TestRelocatedMessageLookup(t *testing.T) {
	c := &Circuit{AssertMessages: []AssertMessage{
		{Location: OpcodeLocation{AcirIndex: 0, BrilligIndex: 3}.WithAcirIndex(1), Message: "moved"},
	}}
	msg, ok := c.GetAssertMessage(NewAcirLocation(1))
	require.True(t, ok)
	assert.Equal(t, "moved", msg)
}
