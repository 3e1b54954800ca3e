package svgout

import (
	"errors"
	"fmt"

	"github.com/npillmayer/koishi"
	tstrconv "github.com/tdewolff/parse/v2/strconv"
)

// ErrPathData indicates path data which is not a sequence of M, L and l commands.
var ErrPathData = errors.New("malformed path data")

// ParsePathData reads back the d-attribute of a path as written by
// Document.PathData. Only the commands M, L and l are understood, each
// followed by exactly one coordinate pair.
func ParsePathData(d string) ([]koishi.Pair, error) {
	b := []byte(d)
	var nodes []koishi.Pair
	var cur koishi.Pair
	i := skipSpace(b, 0)
	for i < len(b) {
		cmd := b[i]
		i = skipSpace(b, i+1)
		x, n := tstrconv.ParseFloat(b[i:])
		if n == 0 {
			return nil, fmt.Errorf("%w: expected number at offset %d", ErrPathData, i)
		}
		i = skipSpace(b, i+n)
		y, n := tstrconv.ParseFloat(b[i:])
		if n == 0 {
			return nil, fmt.Errorf("%w: expected number at offset %d", ErrPathData, i)
		}
		i = skipSpace(b, i+n)
		switch cmd {
		case 'M':
			if len(nodes) > 0 {
				return nil, fmt.Errorf("%w: more than one sub-path", ErrPathData)
			}
			cur = koishi.P(x, y)
		case 'L':
			cur = koishi.P(x, y)
		case 'l':
			cur += koishi.P(x, y)
		default:
			return nil, fmt.Errorf("%w: unsupported command %q", ErrPathData, cmd)
		}
		if cmd != 'M' && len(nodes) == 0 {
			return nil, fmt.Errorf("%w: path must start with M", ErrPathData)
		}
		nodes = append(nodes, cur)
	}
	return nodes, nil
}

func skipSpace(b []byte, i int) int {
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\t') {
		i++
	}
	return i
}
