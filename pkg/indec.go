package pkg

import (
	"fmt"
	"io"
	"strings"
)

// PrintIndec renders a tenths value with exactly one fractional digit.
func PrintIndec(i int64) string {
	var sign string
	if i < 0 {
		sign = "-"
		i = -i
	}
	return fmt.Sprint(sign, i/10, ".", i%10)
}

// ParseIndec reads `-?\d+\.\d` as tenths. The input is trusted: anything
// else yields an unspecified value.
func ParseIndec(bs []byte) int32 {
	var result int32
	i, n := 0, len(bs)
	neg := bs[0] == '-'
	if neg {
		i++
	}

	for ; i < n-2; i++ {
		result = result*10 + int32(bs[i]-'0')
	}
	result = result*10 + int32(bs[n-1]-'0')

	if neg {
		result = -result
	}

	return result
}

// Format writes rows as `{k=min/mean/max, ...}` followed by a newline.
func Format(w io.Writer, rows []Row) error {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, r := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.Key)
		sb.WriteByte('=')
		sb.WriteString(PrintIndec(int64(r.Data.Min)))
		sb.WriteByte('/')
		sb.WriteString(PrintIndec(r.Data.MeanIndec()))
		sb.WriteByte('/')
		sb.WriteString(PrintIndec(int64(r.Data.Max)))
	}
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
