package tempmoncmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseObservation(t *testing.T) {
	var v, err = parseObservation("36.5")
	require.NoError(t, err)
	require.Equal(t, 36.5, *v)

	v, err = parseObservation("-")
	require.NoError(t, err)
	require.Nil(t, v)

	_, err = parseObservation("warm")
	require.ErrorContains(t, err, `invalid temperature "warm"`)
}
