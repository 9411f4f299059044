package mcp

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArguments_NullIsAbsent(t *testing.T) {
	args := arguments{"status_id": nil, "following": nil}

	n, err := args.optionalInt("status_id")
	require.NoError(t, err)
	assert.Nil(t, n)

	b, err := args.optionalBool("following")
	require.NoError(t, err)
	assert.Nil(t, b)

	_, err = args.requireString("status_id")
	assert.EqualError(t, err, `missing required argument "status_id"`)
}

func TestArguments_IntegerForms(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
		ok   bool
	}{
		{"float", float64(42), 42, true},
		{"fraction", 4.5, 0, false},
		{"above int64", 1e20, 0, false},
		{"below int64", -1e20, 0, false},
		{"infinite", math.Inf(1), 0, false},
		{"int64 min", float64(-(1 << 63)), -(1 << 63), true},
		{"int", 7, 7, true},
		{"int64", int64(1700000000), 1700000000, true},
		{"json number", json.Number("99"), 99, true},
		{"numeric string", "12", 12, true},
		{"word", "twelve", 0, false},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := arguments{"n": tt.in}.optionalInt64("n")
			if !tt.ok {
				assert.EqualError(t, err, `argument "n" must be an integer`)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestArguments_IntOr(t *testing.T) {
	n, err := arguments{}.intOr("limit", 20)
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	n, err = arguments{"limit": float64(0)}.intOr("limit", 20)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestArguments_TypeMismatch(t *testing.T) {
	args := arguments{"program_id": 5, "following": "yes", "params": []any{"a"}}

	_, err := args.requireString("program_id")
	assert.EqualError(t, err, `argument "program_id" must be a string`)

	_, err = args.optionalBool("following")
	assert.EqualError(t, err, `argument "following" must be a boolean`)

	_, err = args.optionalObject("params")
	assert.EqualError(t, err, `argument "params" must be an object`)
}
