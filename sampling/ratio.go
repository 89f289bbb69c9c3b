package sampling

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/mjkern/bmpjpeg/errs"
)

// Ratio is a chrominance subsampling ratio, expressed the JPEG way as three
// relative sample counts (e.g. 4:2:0).
type Ratio struct {
	A, B, C uint8
}

// Factor is the horizontal/vertical block size that chroma planes are
// block-averaged over for a given ratio.
type Factor struct {
	H, V int
}

var factors = map[Ratio]Factor{
	{4, 4, 4}: {1, 1},
	{4, 2, 2}: {2, 1},
	{4, 2, 0}: {2, 2},
}

// FactorFor returns the (hf,vf) block size for r, or a CoefficientOverflow-
// unrelated InvalidInput error if r isn't one of the three supported ratios.
func FactorFor(r Ratio) (Factor, error) {
	f, ok := factors[r]
	if !ok {
		return Factor{}, errs.InvalidInputf("unsupported chrominance subsampling ratio %d:%d:%d", r.A, r.B, r.C)
	}
	return f, nil
}

// String renders the ratio in "A:B:C" form.
func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d:%d", r.A, r.B, r.C)
}

// Default420 is the default ratio used when the CLI isn't given one.
var Default420 = Ratio{4, 2, 0}

// Parse parses a "4:2:0"-style ratio string, validating it against the
// supported ratio table.
func Parse(s string) (Ratio, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Ratio{}, errs.InvalidInputf("subsampling ratio must be in the format A:B:C, got %q", s)
	}
	var vals [3]uint8
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return Ratio{}, errors.Wrapf(errs.ErrInvalidInput, "subsampling ratio component %q is not a valid integer", part)
		}
		vals[i] = uint8(n)
	}
	r := Ratio{vals[0], vals[1], vals[2]}
	if _, err := FactorFor(r); err != nil {
		return Ratio{}, err
	}
	return r, nil
}
