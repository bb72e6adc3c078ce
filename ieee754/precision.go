package ieee754

// Precision describes the field layout of one IEEE-754 width.
type Precision struct {
	Width           int
	Bias            int
	ExponentBits    int
	SignificandBits int
}

// Half is the 16 bit precision.
func Half() Precision { return Precision{16, 15, 5, 10} }

// Single is the 32 bit precision.
func Single() Precision { return Precision{32, 127, 8, 23} }

// Double is the 64 bit precision.
func Double() Precision { return Precision{64, 1023, 11, 52} }

// Quadruple is the 128 bit precision.
func Quadruple() Precision { return Precision{128, 16383, 15, 112} }

// Octuple is the 256 bit precision.
func Octuple() Precision { return Precision{256, 262143, 19, 236} }

// Lookup returns the precision for a total width in bits.
func Lookup(width int) (Precision, error) {
	switch width {
	case 16:
		return Half(), nil
	case 32:
		return Single(), nil
	case 64:
		return Double(), nil
	case 128:
		return Quadruple(), nil
	case 256:
		return Octuple(), nil
	}

	return Precision{}, UnknownPrecision.New("width %d", width)
}

// maxCharacteristic is the all ones exponent field reserved for infinities
// and NaN.
func (p Precision) maxCharacteristic() int {
	return 1<<p.ExponentBits - 1
}
