package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type config struct {
	depth int
	name  string
}

func withDepth(d int) Option[*config] {
	return New(func(c *config) error {
		if d < 0 {
			return errors.New("negative depth")
		}
		c.depth = d

		return nil
	})
}

func withName(n string) Option[*config] {
	return NoError(func(c *config) {
		c.name = n
	})
}

func TestApply(t *testing.T) {
	c := &config{}
	err := Apply(c, withDepth(4), withName("octants"))

	require.NoError(t, err)
	require.Equal(t, 4, c.depth)
	require.Equal(t, "octants", c.name)
}

func TestApply_StopsAtError(t *testing.T) {
	c := &config{}
	err := Apply(c, withDepth(-1), withName("unreached"))

	require.Error(t, err)
	require.Empty(t, c.name)
}

func TestApply_NoOptions(t *testing.T) {
	c := &config{}
	require.NoError(t, Apply(c))
}
