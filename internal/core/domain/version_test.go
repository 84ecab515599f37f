package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rab/internal/core/domain"
)

func TestParseVersion(t *testing.T) {
	v, err := domain.ParseVersion("12.3.0")
	require.NoError(t, err)
	assert.Equal(t, domain.Version{Major: 12, Minor: 3}, v)
	assert.Equal(t, "12.3.0", v.String())

	pre, err := domain.ParseVersion("1.1.0-rc.1")
	require.NoError(t, err)
	assert.Equal(t, "rc.1", pre.Prerelease)
	assert.Equal(t, domain.Version{Major: 1, Minor: 1}, pre.Core())
}

func TestParseVersion_Invalid(t *testing.T) {
	for _, in := range []string{"", "12.3", "1.2.3.4", "v1.2.3", "01.2.3", "1.2.x", "1.2.3-"} {
		t.Run(in, func(t *testing.T) {
			_, err := domain.ParseVersion(in)
			assert.Error(t, err)
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "1.0.1", -1},
		{"1.10.0", "1.9.0", 1},
		{"2.0.0", "10.0.0", -1},
		{"1.0.0-rc.1", "1.0.0", -1},
		{"1.0.0-rc.2", "1.0.0-rc.10", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			got := domain.MustParseVersion(tt.a).Compare(domain.MustParseVersion(tt.b))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersion_Text(t *testing.T) {
	var v domain.Version
	require.NoError(t, v.UnmarshalText([]byte("3.27.1")))
	out, err := v.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "3.27.1", string(out))
	assert.Error(t, v.UnmarshalText([]byte("3.27")))
}
