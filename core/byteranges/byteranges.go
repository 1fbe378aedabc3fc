package byteranges

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformed marks a Range header value that does not parse as a
	// bytes range-set.
	ErrMalformed = errors.New("malformed byte-range specifier")

	// ErrUnsatisfiable marks a syntactically valid range-set in which
	// some range lies entirely outside the resource.
	ErrUnsatisfiable = errors.New("unsatisfiable byte-range")
)

// Range is an inclusive [Start, End] window of a resource's bytes,
// 0-indexed. A Range returned by Parse satisfies
// 0 <= Start <= End < size.
type Range struct {
	Start int64
	End   int64
}

// Length returns the number of bytes the range covers.
func (r Range) Length() int64 {
	return r.End - r.Start + 1
}

// ContentRange formats the range as a Content-Range header value
// against the total resource size.
func (r Range) ContentRange(size int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", r.Start, r.End, size)
}

// Parse interprets a Range header value against the total resource
// size, returning the validated ranges in request order. Supported
// forms per RFC 9110: "first-last", "first-" and "-suffix". The unit
// must be "bytes". Returns ErrMalformed for syntax errors and
// ErrUnsatisfiable when any range lies beyond the resource.
func Parse(size int64, header string) ([]Range, error) {
	const unit = "bytes="
	if !strings.HasPrefix(header, unit) {
		return nil, ErrMalformed
	}

	specs := strings.Split(header[len(unit):], ",")
	ranges := make([]Range, 0, len(specs))
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			return nil, ErrMalformed
		}

		rg, err := resolve(size, spec)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, rg)
	}

	if len(ranges) == 0 {
		return nil, ErrMalformed
	}
	return ranges, nil
}

// resolve maps a single range-spec onto concrete offsets.
func resolve(size int64, spec string) (Range, error) {
	first, last, ok := strings.Cut(spec, "-")
	if !ok {
		return Range{}, ErrMalformed
	}

	if first == "" {
		// Suffix form "-N": the final N bytes.
		n, err := strconv.ParseInt(last, 10, 64)
		if err != nil || n <= 0 {
			return Range{}, ErrMalformed
		}
		if size == 0 {
			return Range{}, ErrUnsatisfiable
		}
		start := size - n
		if start < 0 {
			start = 0
		}
		return Range{Start: start, End: size - 1}, nil
	}

	start, err := strconv.ParseInt(first, 10, 64)
	if err != nil || start < 0 {
		return Range{}, ErrMalformed
	}
	if start >= size {
		return Range{}, ErrUnsatisfiable
	}

	if last == "" {
		// Open form "N-": from N to the end.
		return Range{Start: start, End: size - 1}, nil
	}

	end, err := strconv.ParseInt(last, 10, 64)
	if err != nil || end < start {
		return Range{}, ErrMalformed
	}
	if end >= size {
		end = size - 1
	}
	return Range{Start: start, End: end}, nil
}
