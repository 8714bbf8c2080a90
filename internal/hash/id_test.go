package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short name", "test", 0x4fdcca5ddb678139},
		{"dotted field name", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another name", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestID_Distinct(t *testing.T) {
	require.NotEqual(t, ID("density"), ID("pressure"))
	require.Equal(t, ID("density"), ID("density"))
}
