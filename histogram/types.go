package histogram

// Type names a histogram construction.
type Type string

const (
	TypeGrayValue Type = "grayvalue"
	TypeRGB       Type = "rgb"
	TypeRG        Type = "rg"
	TypeDxDy      Type = "dxdy"
)

// Result is what the dispatcher returns. Edges is set only for grayvalue
// histograms, and Values sums to 1 for every type except dxdy, which
// carries raw counts.
type Result struct {
	Type   Type
	Values []float64
	Edges  []float64
}

func (r Result) Normalized() bool {
	return r.Type != TypeDxDy
}
