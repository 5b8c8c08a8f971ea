package opencv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"histogram-descriptors/gauss"
	"histogram-descriptors/grid"
	"histogram-descriptors/histogram"
)

func ramp(rows, cols int) *grid.Array {
	a := grid.Zeros(grid.Float64, rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			a.Set(float64((x*7+y*3)%23), y, x)
		}
	}
	return a
}

func TestArrayToMat(t *testing.T) {
	a := ramp(3, 4)

	m, err := ArrayToMat(a)
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())

	back, err := MatToArray(m)
	require.NoError(t, err)
	assert.Equal(t, a.Data(), back.Data())

	_, err = ArrayToMat(grid.Zeros(grid.Float64, 2, 2, 3))
	assert.True(t, errors.Is(err, grid.ErrDimensionMismatch))
}

func TestMatToArrayBGR(t *testing.T) {
	m := gocv.NewMatWithSize(1, 2, gocv.MatTypeCV8UC3)
	defer m.Close()
	m.SetUCharAt3(0, 0, 0, 10) // B
	m.SetUCharAt3(0, 0, 1, 20) // G
	m.SetUCharAt3(0, 0, 2, 30) // R

	a, err := MatToArray(m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, a.Shape())
	assert.Equal(t, grid.Float64, a.DType())
	assert.Equal(t, 30.0, a.At(0, 0, 0))
	assert.Equal(t, 20.0, a.At(0, 0, 1))
	assert.Equal(t, 10.0, a.At(0, 0, 2))
}

func TestMatToArrayGray(t *testing.T) {
	m := gocv.NewMatWithSize(2, 1, gocv.MatTypeCV8UC1)
	defer m.Close()
	m.SetUCharAt(1, 0, 200)

	a, err := MatToArray(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 200}, a.Data())
}

func TestMatToArrayRejects(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()
	_, err := MatToArray(empty)
	assert.Error(t, err)

	m := gocv.NewMatWithSize(2, 2, gocv.MatTypeCV16UC1)
	defer m.Close()
	_, err = MatToArray(m)
	assert.Error(t, err)
}

func TestDeriverMatchesPureGo(t *testing.T) {
	img := ramp(16, 16)

	wantDx, wantDy, err := gauss.Deriv(img, 3.0)
	require.NoError(t, err)
	gotDx, gotDy, err := Deriver{}.Deriv(img, 3.0)
	require.NoError(t, err)

	assert.InDeltaSlice(t, wantDx.Data(), gotDx.Data(), 1e-9)
	assert.InDeltaSlice(t, wantDy.Data(), gotDy.Data(), 1e-9)
}

func TestDeriverInBuilder(t *testing.T) {
	b := histogram.NewBuilder(histogram.WithDeriver(Deriver{}))

	hist, err := b.DxDy(ramp(12, 12), 4)
	require.NoError(t, err)
	assert.Len(t, hist, 16)

	var total float64
	for _, v := range hist {
		total += v
	}
	assert.Equal(t, 144.0, total)
}
