package encode_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maybe-hello-world/passgen-embedded/pkg/encode"
)

func TestMustJSONMarshal(t *testing.T) {
	assert.Equal(t, `{"a":1}`, string(encode.MustJSONMarshal(map[string]int{"a": 1})))
	assert.Panics(t, func() {
		encode.MustJSONMarshal(math.Inf(1))
	})
}

func TestWriteJSONLine(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, encode.WriteJSONLine(buf, []string{"x"}))
	require.NoError(t, encode.WriteJSONLine(buf, []string{"y"}))
	assert.Equal(t, "[\"x\"]\n[\"y\"]\n", buf.String())
}

func TestFloatToDecimal(t *testing.T) {
	tests := []struct {
		f      float64
		places int32
		want   string
	}{
		{98.71428, 2, "98.71"},
		{6.169925001442312, 2, "6.17"},
		{0, 2, "0"},
		{12.5, 0, "13"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, encode.FloatToDecimal(tt.f, tt.places).String())
		})
	}
}
