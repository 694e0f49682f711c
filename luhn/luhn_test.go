// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package luhn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	cases := []struct {
		name   string
		digits string
		want   bool
	}{
		{"visa test number", "4111111111111111", true},
		{"meeza test number", "5078031234567890", true},
		{"off by one", "4111111111111112", false},
		{"amex test number", "378282246310005", true},
		{"single zero", "0", true},
		{"empty", "", false},
		{"non digit", "41111111x1111111", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, IsValid(c.digits))
		})
	}
}

func TestCheckDigit(t *testing.T) {
	cd, ok := CheckDigit("411111111111111")
	require.True(t, ok)
	assert.Equal(t, byte('1'), cd)

	_, ok = CheckDigit("")
	assert.False(t, ok)
	_, ok = CheckDigit("12a4")
	assert.False(t, ok)
}

// Appending the computed check digit must always produce a valid
// number, whatever the prefix.
func TestCheckDigitProperty(t *testing.T) {
	prefixes := []string{
		"507803", "417867", "374622", "4", "51234567890123",
		"622126123456789", "000000", "999999999999",
	}
	for _, p := range prefixes {
		cd, ok := CheckDigit(p)
		require.True(t, ok, "prefix %s", p)
		assert.True(t, IsValid(p+string(cd)), "prefix %s check digit %c", p, cd)
	}
}

func TestSteps(t *testing.T) {
	tr := Steps("4111111111111111")
	require.NotNil(t, tr)
	assert.True(t, tr.Valid)
	assert.Len(t, tr.Steps, 16)
	assert.Equal(t, 30, tr.Total)

	// Rightmost digit is never doubled.
	last := tr.Steps[len(tr.Steps)-1]
	assert.False(t, last.Doubled)
	assert.Equal(t, tr.Total, last.RunningSum)

	// Doubling flag alternates from the right.
	assert.True(t, tr.Steps[len(tr.Steps)-2].Doubled)

	// Digit-sum rule: 8 doubled becomes 16 then 7.
	tr = Steps("81")
	require.NotNil(t, tr)
	assert.True(t, tr.Steps[0].Doubled)
	assert.Equal(t, 7, tr.Steps[0].Value)
	assert.Equal(t, 1, tr.Steps[1].Value)

	assert.Nil(t, Steps(""))
	assert.Nil(t, Steps("12x4"))
}

func TestStepsMatchesIsValid(t *testing.T) {
	for _, d := range []string{"4111111111111111", "4111111111111112", "5078031234567890"} {
		tr := Steps(d)
		require.NotNil(t, tr)
		assert.Equal(t, IsValid(d), tr.Valid, d)
	}
}

func TestGenerateTestNumber(t *testing.T) {
	for i := 0; i < 20; i++ {
		n, err := GenerateTestNumber("507803", 16)
		require.NoError(t, err)
		assert.Len(t, n, 16)
		assert.True(t, strings.HasPrefix(n, "507803"))
		assert.True(t, IsValid(n), n)
	}

	n, err := GenerateTestNumber("374622", 15)
	require.NoError(t, err)
	assert.Len(t, n, 15)
	assert.True(t, IsValid(n))
}

func TestGenerateTestNumberRejectsBadInput(t *testing.T) {
	_, err := GenerateTestNumber("", 16)
	assert.Error(t, err)
	_, err = GenerateTestNumber("41x", 16)
	assert.Error(t, err)
	_, err = GenerateTestNumber("411111", 12)
	assert.Error(t, err)
	_, err = GenerateTestNumber("411111", 20)
	assert.Error(t, err)
	_, err = GenerateTestNumber("4111111111111111", 16)
	assert.Error(t, err)
}
