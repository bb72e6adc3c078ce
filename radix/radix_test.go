package radix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/numconv/digit"
	"github.com/calebcase/numconv/radix"
	"github.com/calebcase/oops"
)

func TestEncode(t *testing.T) {
	type TC struct {
		Value  float64
		Digits int
		Radix  int
		Output string
		Mark   error
	}

	tcs := []TC{
		{Value: 0, Digits: 32, Radix: 2, Output: "0", Mark: oops.New("unexpected")},
		{Value: 0.5, Digits: 32, Radix: 2, Output: "0.1", Mark: oops.New("unexpected")},
		{Value: 0.5, Digits: 32, Radix: 16, Output: "0.8", Mark: oops.New("unexpected")},
		{Value: 5, Digits: 32, Radix: 2, Output: "101", Mark: oops.New("unexpected")},
		{Value: -5, Digits: 32, Radix: 2, Output: "-101", Mark: oops.New("unexpected")},
		{Value: 255.75, Digits: 32, Radix: 16, Output: "ff.c", Mark: oops.New("unexpected")},
		{Value: -10.25, Digits: 32, Radix: 10, Output: "-10.25", Mark: oops.New("unexpected")},
		{Value: 5.375, Digits: 4, Radix: 2, Output: "101", Mark: oops.New("unexpected")},
		{Value: 5.375, Digits: 5, Radix: 2, Output: "101.01", Mark: oops.New("unexpected")},
		{Value: 0.1, Digits: 6, Radix: 2, Output: "0.00011", Mark: oops.New("unexpected")},
		{Value: 7, Digits: 0, Radix: 2, Output: "0", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v/%d", i, tc.Value, tc.Radix), func(t *testing.T) {
			output, err := radix.Encode(tc.Value, tc.Digits, tc.Radix)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, output, tc.Mark)
		})
	}
}

func TestDecode(t *testing.T) {
	type TC struct {
		Text  string
		Radix int
		Value float64
	}

	tcs := []TC{
		{Text: "0", Radix: 2, Value: 0},
		{Text: "101", Radix: 2, Value: 5},
		{Text: "-101", Radix: 2, Value: -5},
		{Text: "0.1", Radix: 2, Value: 0.5},
		{Text: ".1", Radix: 2, Value: 0.5},
		{Text: "1.", Radix: 2, Value: 1},
		{Text: "-0.8", Radix: 16, Value: -0.5},
		{Text: "ff.c", Radix: 16, Value: 255.75},
		{Text: "-", Radix: 2, Value: 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Text), func(t *testing.T) {
			v, err := radix.Decode(tc.Text, tc.Radix)
			require.NoError(t, err)
			require.Equal(t, tc.Value, v)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		for _, text := range []string{"1.2.1", "12", "--1", "1-0"} {
			_, err := radix.Decode(text, 2)
			require.True(t, digit.InvalidDigit.Has(err), "%s: %v", text, err)
		}

		_, err := radix.Decode("1", 20)
		require.True(t, digit.RadixOutOfRange.Has(err), "%v", err)
	})
}

func TestRoundtrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.5, -0.75, 3.125, 255.0625, -1024.5, 0.015625}

	for _, r := range []int{2, 4, 8, 16} {
		for _, v := range values {
			t.Run(fmt.Sprintf("%d/%v", r, v), func(t *testing.T) {
				text, err := radix.Encode(v, 32, r)
				require.NoError(t, err)

				decoded, err := radix.Decode(text, r)
				require.NoError(t, err)
				require.Equal(t, v, decoded, text)
			})
		}
	}
}

func TestEncodePadded(t *testing.T) {
	text, err := radix.EncodePadded(5, 8, 2)
	require.NoError(t, err)
	require.Equal(t, "00000101", text)

	text, err = radix.EncodePadded(-5, 8, 2)
	require.NoError(t, err)
	require.Equal(t, "-00000101", text)
}
