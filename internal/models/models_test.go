package models

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStationCode(t *testing.T) {
	cases := []struct {
		code   string
		want   StationCode
		pseudo bool
	}{
		{code: "NS1", want: StationCode{Line: "NS", Number: 1}},
		{code: "NS3A", want: StationCode{Line: "NS", Number: 3, Suffix: "A"}},
		{code: "TE22", want: StationCode{Line: "TE", Number: 22}},
		{code: "CG", want: StationCode{Line: "CG", Number: -1}},
		{code: "STC", want: StationCode{Line: "STC", Number: -1}},
		{code: "CE0Y", want: StationCode{Line: "CE", Number: 0, Suffix: "Y"}, pseudo: true},
		{code: "JE0", want: StationCode{Line: "JE", Number: 0}, pseudo: true},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			got, err := ParseStationCode(tc.code)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.code, got.String())
			assert.Equal(t, tc.pseudo, got.IsPseudo())
		})
	}
}

func TestParseStationCodeRejectsBadCodes(t *testing.T) {
	for _, code := range []string{"", "ns1", "N", "NS", "NS100", "NS01", "1NS", "NS1a", "NS1AB"} {
		_, err := ParseStationCode(code)
		if code == "NS" {
			// Two capital letters are a valid alphabetic code.
			assert.NoError(t, err, code)
			continue
		}
		assert.ErrorIs(t, err, ErrInvalidStationCode, code)
	}
}

func TestStationCodeOrdering(t *testing.T) {
	codes := []string{"NS13", "EW2", "NS3A", "NS3", "CG", "NS13", "EW11"}
	sort.Slice(codes, func(i, j int) bool {
		return CompareStationCodes(codes[i], codes[j]) < 0
	})
	assert.Equal(t, []string{"CG", "EW2", "EW11", "NS3", "NS3A", "NS13", "NS13"}, codes)
}

func TestCompareStationCodesFallsBackToStringOrder(t *testing.T) {
	assert.Negative(t, CompareStationCodes("???", "zzz"))
	assert.Zero(t, CompareStationCodes("???", "???"))
}

func TestNewStation(t *testing.T) {
	s, err := NewStation("NS26", "Raffles Place")
	require.NoError(t, err)
	assert.Equal(t, "NS26", s.Code.String())
	assert.Equal(t, "Raffles Place", s.Name)

	_, err = NewStation("not a code", "Nowhere")
	assert.ErrorIs(t, err, ErrInvalidStationCode)
}

func TestEdgeIsTransfer(t *testing.T) {
	assert.True(t, Edge{EdgeType: TransferEdgeType}.IsTransfer())
	assert.False(t, Edge{EdgeType: "main"}.IsTransfer())
	assert.False(t, Edge{}.IsTransfer())
}
