package casecore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ResolveListingNumber_ZeroPlaceholderNeverErasesExisting(t *testing.T) {
	existing := 3

	resolved := ResolveListingNumber(&existing, 0)

	require.NotNil(t, resolved)
	assert.Equal(t, 3, *resolved)
}

func Test_ResolveListingNumber_PositiveIncomingOverwrites(t *testing.T) {
	existing := 3

	resolved := ResolveListingNumber(&existing, 5)

	require.NotNil(t, resolved)
	assert.Equal(t, 5, *resolved)
}

func Test_ResolveListingNumber_NothingAssignedYet(t *testing.T) {
	assert.Nil(t, ResolveListingNumber(nil, 0))
}

func Test_ResolveListingNumber_FirstAssignment(t *testing.T) {
	resolved := ResolveListingNumber(nil, 1)

	require.NotNil(t, resolved)
	assert.Equal(t, 1, *resolved)
}

func Test_ResolveListingNumber_ReturnsIndependentPointer(t *testing.T) {
	existing := 3

	resolved := ResolveListingNumber(&existing, 0)
	existing = 99

	assert.Equal(t, 3, *resolved)
}

func Test_NextListingNumber(t *testing.T) {
	two := 2
	seven := 7

	offences := []Offence{
		{ID: "off-1", ListingNumber: &two},
		{ID: "off-2"},
		{ID: "off-3", ListingNumber: &seven},
	}

	assert.Equal(t, 8, NextListingNumber(offences))
}

func Test_NextListingNumber_NoneAssigned_StartsAtOne(t *testing.T) {
	assert.Equal(t, 1, NextListingNumber([]Offence{{ID: "off-1"}}))
	assert.Equal(t, 1, NextListingNumber(nil))
}
