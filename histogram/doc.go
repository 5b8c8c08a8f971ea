/*
Package histogram computes intensity, color and gradient histograms of images
for use as feature descriptors.

Four constructions are available:

	grayvalue  normalized intensity histogram of a 2D image, plus bin edges
	rgb        normalized joint R,G,B histogram, numBins^3 entries
	rg         normalized joint R,G histogram, numBins^2 entries
	dxdy       joint histogram of Gaussian x/y derivatives, numBins^2 raw counts

Images are grid.Array values holding float64 data. Grayscale images are
rows×cols and color images rows×cols×channels. Use Compute to select a
histogram by name, and IsGrayValue to learn which kind of image a name expects.
*/
package histogram
