package password

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"math/big"
)

// QuickTokenLength is the number of random bytes behind a quick token.
const QuickTokenLength = 14

// Generator produces passwords and tokens from a random source.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator reading randomness from r. Production
// code should use [crypto/rand.Reader]; a nil r selects it.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

var defaultGenerator = NewGenerator(rand.Reader)

// Generate is a shortcut for Generate on a Generator backed by crypto/rand.
func Generate(opts Options) (string, error) {
	return defaultGenerator.Generate(opts)
}

// QuickToken is a shortcut for QuickToken on a Generator backed by crypto/rand.
func QuickToken(length int) (string, error) {
	return defaultGenerator.QuickToken(length)
}

// Generate returns a password of exactly opts.Length characters.
//
// It fails with [ErrInvalidOptions] when no letter class is enabled and with
// [ErrInvalidLength] (possibly as a [*LengthError]) when the length is too
// short. Every enabled class is represented in the result: letters survive
// both replacement passes and each pass overwrites at least two positions.
func (g *Generator) Generate(opts Options) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	password, err := g.letters(opts.Length, opts.WithLowercase, opts.WithUppercase)
	if err != nil {
		return "", err
	}

	var digitIndexes map[int]struct{}
	if opts.WithNumber {
		digitIndexes, err = g.replace(password, Digits, opts.ReplaceFirstCharacter, nil)
		if err != nil {
			return "", err
		}
	}

	if opts.WithSpecial {
		if _, err = g.replace(password, SafePunctuation, opts.ReplaceFirstCharacter, digitIndexes); err != nil {
			return "", err
		}
	}

	return string(password), nil
}

// QuickToken returns a URL-safe base64 token built from length random
// bytes. A non-positive length selects [QuickTokenLength].
func (g *Generator) QuickToken(length int) (string, error) {
	if length <= 0 {
		length = QuickTokenLength
	}

	b := make([]byte, length)
	if _, err := io.ReadFull(g.rand, b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// letters builds a shuffled string of n letters. With both classes enabled
// the lower half (rounded down) is lowercase and the rest uppercase.
func (g *Generator) letters(n int, lower, upper bool) ([]byte, error) {
	var (
		out []byte
		err error
	)

	switch {
	case lower && upper:
		half := n / 2
		if out, err = g.draw(LowercaseLetters, half, make([]byte, 0, n)); err != nil {
			return nil, err
		}
		if out, err = g.draw(UppercaseLetters, n-half, out); err != nil {
			return nil, err
		}
	case lower:
		if out, err = g.draw(LowercaseLetters, n, make([]byte, 0, n)); err != nil {
			return nil, err
		}
	default:
		if out, err = g.draw(UppercaseLetters, n, make([]byte, 0, n)); err != nil {
			return nil, err
		}
	}

	if err = g.shuffle(out); err != nil {
		return nil, err
	}
	return out, nil
}

// replace overwrites a random sample of positions in s with characters from
// choices and returns the positions it used. Positions listed in exclude are
// never touched, and index 0 is skipped unless replaceFirst is set.
func (g *Generator) replace(s []byte, choices string, replaceFirst bool, exclude map[int]struct{}) (map[int]struct{}, error) {
	start := 1
	if replaceFirst {
		start = 0
	}

	pool := make([]int, 0, len(s))
	for i := start; i < len(s); i++ {
		if _, skip := exclude[i]; !skip {
			pool = append(pool, i)
		}
	}

	count := min(replacementLength(len(s)), len(pool))
	picked := make(map[int]struct{}, count)

	// partial Fisher-Yates: pool[:i] holds the sample drawn so far
	for i := 0; i < count; i++ {
		j, err := g.intn(len(pool) - i)
		if err != nil {
			return nil, err
		}
		j += i
		pool[i], pool[j] = pool[j], pool[i]

		c, err := g.choice(choices)
		if err != nil {
			return nil, err
		}
		s[pool[i]] = c
		picked[pool[i]] = struct{}{}
	}

	return picked, nil
}

func (g *Generator) draw(set string, n int, dst []byte) ([]byte, error) {
	for range n {
		c, err := g.choice(set)
		if err != nil {
			return nil, err
		}
		dst = append(dst, c)
	}
	return dst, nil
}

func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func (g *Generator) choice(set string) (byte, error) {
	i, err := g.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random number: %w", err)
	}
	return int(v.Int64()), nil
}
