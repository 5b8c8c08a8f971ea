package imageconv

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"histogram-descriptors/histogram"
)

func checkerboard(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 10, B: 20, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{R: 0, G: 128, B: 200, A: 255})
			}
		}
	}
	return img
}

func TestColor(t *testing.T) {
	arr, err := Color(checkerboard(3, 2), Options{})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 3}, arr.Shape())
	assert.Equal(t, 255.0, arr.At(0, 0, 0))
	assert.Equal(t, 10.0, arr.At(0, 0, 1))
	assert.Equal(t, 20.0, arr.At(0, 0, 2))
	assert.Equal(t, 128.0, arr.At(0, 1, 1))
	assert.Equal(t, 200.0, arr.At(1, 0, 2))
}

func TestColorOffsetBounds(t *testing.T) {
	img := checkerboard(4, 4).SubImage(image.Rect(1, 1, 3, 4))

	arr, err := Color(img, Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 3}, arr.Shape())
	// (1,1) is an even square.
	assert.Equal(t, 255.0, arr.At(0, 0, 0))
}

func TestGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{Y: 100})
	img.SetGray(1, 0, color.Gray{Y: 255})

	arr, err := Gray(img, Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, arr.Shape())
	assert.InDelta(t, 100*(weightR+weightG+weightB), arr.At(0, 0), 1e-9)
	assert.InDelta(t, 255*(weightR+weightG+weightB), arr.At(0, 1), 1e-9)
}

func TestMaxSize(t *testing.T) {
	arr, err := Color(checkerboard(100, 50), Options{MaxSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10, 3}, arr.Shape())

	// Smaller images are left alone.
	arr, err = Gray(checkerboard(4, 4), Options{MaxSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4}, arr.Shape())
}

func TestNilImage(t *testing.T) {
	_, err := Color(nil, Options{})
	assert.Error(t, err)
}

func TestFeedsHistograms(t *testing.T) {
	img := checkerboard(8, 8)

	rgb, err := Color(img, Options{})
	require.NoError(t, err)
	result, err := histogram.Compute(rgb, 2, "rgb")
	require.NoError(t, err)
	// Half the pixels are (255,10,20), half (0,128,200).
	assert.Equal(t, 0.5, result.Values[1*4+0*2+0])
	assert.Equal(t, 0.5, result.Values[0*4+1*2+1])

	gray, err := Gray(img, Options{})
	require.NoError(t, err)
	result, err = histogram.Compute(gray, 4, "grayvalue")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.Values[0]+result.Values[1]+result.Values[2]+result.Values[3], 1e-9)
}
