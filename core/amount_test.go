package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountKnownUnknown(t *testing.T) {
	assert.False(t, Unknown.IsKnown())
	assert.Equal(t, 0.0, Unknown.Float())

	a := Known(1054)
	assert.True(t, a.IsKnown())
	assert.Equal(t, 1054.0, a.Float())

	// Known zero is a real value, distinct from Unknown.
	z := Known(0)
	assert.True(t, z.IsKnown())
}

func TestDiv(t *testing.T) {
	tests := []struct {
		name string
		num  Amount
		den  Amount
		want Amount
	}{
		{"rounds to two decimals", Known(1054), Known(112.85), Known(9.34)},
		{"land unit price", Known(2226), Known(151.45), Known(14.70)},
		{"unknown numerator", Unknown, Known(112.85), Unknown},
		{"unknown denominator", Known(1054), Unknown, Unknown},
		{"zero denominator", Known(1054), Known(0), Unknown},
		{"both unknown", Unknown, Unknown, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Div(tt.num, tt.den))
		})
	}
}

func TestAmountJSON(t *testing.T) {
	data, err := json.Marshal(Known(12.5))
	require.NoError(t, err)
	assert.Equal(t, "12.5", string(data))

	data, err = json.Marshal(Unknown)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var a Amount
	require.NoError(t, json.Unmarshal([]byte("9.34"), &a))
	assert.Equal(t, Known(9.34), a)

	require.NoError(t, json.Unmarshal([]byte("null"), &a))
	assert.False(t, a.IsKnown())

	assert.Error(t, json.Unmarshal([]byte(`"not a number"`), &a))
}
