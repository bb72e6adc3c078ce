package digit

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/errs"
)

func TestDecodeInteger(t *testing.T) {
	type TC struct {
		digits string
		radix  int
		value  float64
		class  *errs.Class
	}

	tcs := []TC{
		{digits: "0", radix: 2, value: 0},
		{digits: "101", radix: 2, value: 5},
		{digits: "777", radix: 8, value: 511},
		{digits: "ff", radix: 16, value: 255},
		{digits: "FF", radix: 16, class: &InvalidDigit},
		{digits: "A", radix: 16, class: &InvalidDigit},
		{digits: "zz", radix: 16, class: &InvalidDigit},
		{digits: "2", radix: 2, class: &InvalidDigit},
		{digits: "", radix: 10, class: &InvalidDigit},
		{digits: "1", radix: 1, class: &RadixOutOfRange},
		{digits: "1", radix: 17, class: &RadixOutOfRange},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%d", i, tc.digits, tc.radix), func(t *testing.T) {
			v, err := DecodeInteger(tc.digits, tc.radix)
			if tc.class != nil {
				require.Error(t, err)
				require.True(t, tc.class.Has(err), "%v", err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.value, v)
		})
	}
}

func TestDecodeFraction(t *testing.T) {
	v, err := DecodeFraction("1", 2)
	require.NoError(t, err)
	require.Equal(t, 0.5, v)

	v, err = DecodeFraction("8", 16)
	require.NoError(t, err)
	require.Equal(t, 0.5, v)

	v, err = DecodeFraction("011", 2)
	require.NoError(t, err)
	require.Equal(t, 0.375, v)

	v, err = DecodeFraction("", 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	_, err = DecodeFraction("9", 8)
	require.True(t, InvalidDigit.Has(err), "%v", err)
}

func TestEncodeInteger(t *testing.T) {
	type TC struct {
		value  float64
		digits int
		radix  int
		output string
	}

	tcs := []TC{
		{value: 0, digits: 32, radix: 2, output: "0"},
		{value: 5, digits: 32, radix: 2, output: "101"},
		{value: 255, digits: 32, radix: 16, output: "ff"},
		{value: 1000, digits: 32, radix: 10, output: "1000"},
		// Budget exhausted: only the low digits survive.
		{value: 0b1011_0110, digits: 4, radix: 2, output: "0110"},
		{value: 0x1234, digits: 2, radix: 16, output: "34"},
		{value: 7, digits: 0, radix: 2, output: ""},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v", i, tc.value), func(t *testing.T) {
			output, err := EncodeInteger(tc.value, tc.digits, tc.radix)
			require.NoError(t, err, oops.New("unexpected"))
			require.Equal(t, tc.output, output)
		})
	}

	t.Run("domain", func(t *testing.T) {
		for _, v := range []float64{-1, 1.5, math.Inf(1), math.NaN()} {
			_, err := EncodeInteger(v, 32, 2)
			require.True(t, Domain.Has(err), "%v: %v", v, err)
		}

		_, err := EncodeInteger(1, -1, 2)
		require.True(t, Domain.Has(err), "%v", err)

		_, err = EncodeInteger(1, 32, 0)
		require.True(t, RadixOutOfRange.Has(err), "%v", err)
	})
}

func TestEncodeLargeBudget(t *testing.T) {
	output, err := EncodeInteger(5, math.MaxInt, 2)
	require.NoError(t, err)
	require.Equal(t, "101", output)

	output, err = EncodeInteger(math.MaxFloat64, math.MaxInt, 2)
	require.NoError(t, err)
	require.Len(t, output, 1024)

	output, err = EncodeFraction(0.375, math.MaxInt, 2)
	require.NoError(t, err)
	require.Equal(t, "011", output)
}

func TestEncodeFraction(t *testing.T) {
	type TC struct {
		value  float64
		digits int
		radix  int
		output string
	}

	tcs := []TC{
		{value: 0, digits: 32, radix: 2, output: "0"},
		{value: 0.5, digits: 32, radix: 2, output: "1"},
		{value: 0.5, digits: 32, radix: 16, output: "8"},
		{value: 0.375, digits: 32, radix: 2, output: "011"},
		{value: 0.25, digits: 32, radix: 10, output: "25"},
		// 0.1 never terminates in binary; truncated at the budget.
		{value: 0.1, digits: 8, radix: 2, output: "00011001"},
		{value: 0.375, digits: 2, radix: 2, output: "01"},
		{value: 0.5, digits: 0, radix: 2, output: ""},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v", i, tc.value), func(t *testing.T) {
			output, err := EncodeFraction(tc.value, tc.digits, tc.radix)
			require.NoError(t, err, oops.New("unexpected"))
			require.Equal(t, tc.output, output)
		})
	}

	t.Run("domain", func(t *testing.T) {
		for _, v := range []float64{-0.5, 1, 1.5, math.NaN()} {
			_, err := EncodeFraction(v, 32, 2)
			require.True(t, Domain.Has(err), "%v: %v", v, err)
		}
	})
}

func TestIntegerRoundtrip(t *testing.T) {
	values := []float64{1, 2, 15, 16, 255, 1 << 20, 123456789, 1<<53 - 1}

	for radix := MinRadix; radix <= MaxRadix; radix++ {
		for _, v := range values {
			t.Run(fmt.Sprintf("%d/%v", radix, v), func(t *testing.T) {
				digits, err := EncodeInteger(v, 64, radix)
				require.NoError(t, err)

				decoded, err := DecodeInteger(digits, radix)
				require.NoError(t, err)
				require.Equal(t, v, decoded, digits)
			})
		}
	}
}
