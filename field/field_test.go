package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat64Field_GetSet(t *testing.T) {
	f := NewFloat64Field("density", -1)

	require.Equal(t, float64(-1), f.Get(0), "unset cells read the fill value")
	require.Equal(t, int64(0), f.Len())

	f.Set(4, 2.5)
	require.Equal(t, 2.5, f.Get(4))
	require.Equal(t, int64(5), f.Len())
	require.Equal(t, float64(-1), f.Get(2), "cells below the growth point keep the fill")
	require.Equal(t, float64(-1), f.Get(100), "reads past the end are the fill")
}

func TestFloat64Field_NegativeIndex(t *testing.T) {
	f := NewFloat64Field("density", 0)
	require.Equal(t, float64(0), f.Get(-1))
	require.Panics(t, func() { f.Set(-1, 1) })
}

func TestNameID_MatchesFieldID(t *testing.T) {
	f := NewFloat64Field("pressure", 0)
	require.Equal(t, NameID("pressure"), f.ID())
	require.NotEqual(t, NameID("pressure"), NameID("density"))
}

func TestSet_Lookup(t *testing.T) {
	s := NewSet()
	s.Add(NewFloat64Field("density", 0))
	s.Add(NewFloat64Field("pressure", 0))
	require.Equal(t, 2, s.Len())

	f, err := s.GetByName("density")
	require.NoError(t, err)
	require.Equal(t, "density", f.Name())

	byID, err := s.Get(NameID("density"))
	require.NoError(t, err)
	require.Same(t, f, byID)

	_, err = s.GetByName("missing")
	require.ErrorIs(t, err, ErrFieldNotFound)
}

func TestSet_AddReplacesSameName(t *testing.T) {
	s := NewSet()
	s.Add(NewFloat64Field("density", 0))
	replacement := NewFloat64Field("density", -1)
	s.Add(replacement)

	require.Equal(t, 1, s.Len())
	f, err := s.GetByName("density")
	require.NoError(t, err)
	require.Same(t, replacement, f)
}
