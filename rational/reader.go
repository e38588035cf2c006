package rational

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var (
	ErrShortInput = errors.New("rational: fewer values than the declared count")
	ErrBadToken   = errors.New("rational: token is not a 32 bit integer")
)

type Opener interface {
	Open(string) (io.ReadCloser, error)
}

// maxPrealloc bounds the capacity Read reserves before any pair is parsed.
const maxPrealloc = 1024

// OSOpener opens files from the local file system.
type OSOpener struct{}

func (OSOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// Read parses whitespace separated integers: a count, then count pairs of
// numerator and denominator. Anything after the last pair is ignored.
func Read(r io.Reader) ([]Rational, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (int32, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadToken, sc.Text())
		}
		return int32(v), nil
	}

	count, err := next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing count", ErrShortInput)
	}
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrBadToken, count)
	}

	// count is untrusted, so it only bounds the initial capacity
	values := make([]Rational, 0, min(int(count), maxPrealloc))
	for i := 0; i < int(count); i++ {
		num, err := next()
		if err == nil {
			var den int32
			if den, err = next(); err == nil {
				if den == 0 {
					return nil, fmt.Errorf("%w: value %d", ErrZeroDenominator, i)
				}
				values = append(values, Rational{Num: num, Den: den})
				continue
			}
		}
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: read %d of %d", ErrShortInput, i, count)
		}
		return nil, err
	}
	return values, nil
}

// ReadFile opens name with opener and reads it with Read.
func ReadFile(opener Opener, name string) ([]Rational, error) {
	f, err := opener.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
