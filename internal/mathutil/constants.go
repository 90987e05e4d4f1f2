package mathutil

// Cubic Hermite basis polynomial coefficients.
// Formula: h00 = 2t³ - 3t² + 1, h10 = t³ - 2t² + t,
// h01 = 3t² - 2t³, h11 = t³ - t²
const (
	hermiteCubeCoeff2   = 2 // 2t³ in h00, -2t³ in h01
	hermiteSquareCoeff2 = 2 // -2t² in h10
	hermiteSquareCoeff3 = 3 // -3t² in h00, 3t² in h01
)
