package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxsparsify/matrix"
)

func TestValidateNotNil_RejectsNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
}

func TestValidateSameShape_RejectsMismatch(t *testing.T) {
	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(3, 2)
	require.NoError(t, err)

	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
}

func TestValidateSquare_RejectsNonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.ErrorIs(t, matrix.ValidateSquare(m), matrix.ErrDimensionMismatch)
}

func TestValidateSquare_AcceptsSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateSquare(m))
}
