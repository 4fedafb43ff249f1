package password

const (
	// MinLength is the absolute minimum password length.
	MinLength = 5

	// MinLengthForManyClasses is the minimum length when more than two
	// character classes are enabled.
	MinLengthForManyClasses = 10

	// DefaultLength is the length used by [DefaultOptions].
	DefaultLength = 14

	// MaxReplacements caps how many positions a single replacement pass
	// may overwrite.
	MaxReplacements = 7
)

// Character sets used by the generator.
const (
	LowercaseLetters = "abcdefghijklmnopqrstuvwxyz"
	UppercaseLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits           = "0123456789"
	SafePunctuation  = "!@#$%^&*()_+-=[]{}|;:,.<>?/~"
)

// Options controls the composition of a generated password.
type Options struct {
	// Length is the exact length of the result.
	Length int

	WithLowercase bool
	WithUppercase bool
	WithNumber    bool
	WithSpecial   bool

	// ReplaceFirstCharacter allows the digit and special passes to overwrite
	// index 0. By default the first character is always a letter.
	ReplaceFirstCharacter bool
}

// DefaultOptions returns options with every class enabled and
// [DefaultLength] characters.
func DefaultOptions() Options {
	return Options{
		Length:        DefaultLength,
		WithLowercase: true,
		WithUppercase: true,
		WithNumber:    true,
		WithSpecial:   true,
	}
}

// chosen returns the names of the enabled classes in a fixed order.
func (o Options) chosen() []string {
	names := make([]string, 0, 4)
	if o.WithNumber {
		names = append(names, "with_number")
	}
	if o.WithLowercase {
		names = append(names, "with_lowercase")
	}
	if o.WithUppercase {
		names = append(names, "with_uppercase")
	}
	if o.WithSpecial {
		names = append(names, "with_special")
	}
	return names
}

func (o Options) validate() error {
	if !o.WithLowercase && !o.WithUppercase {
		return ErrInvalidOptions
	}

	if o.Length < MinLength {
		return ErrInvalidLength
	}

	if chosen := o.chosen(); len(chosen) > 2 && o.Length < MinLengthForManyClasses {
		return &LengthError{Length: o.Length, Options: chosen}
	}

	return nil
}

// replacementLength returns how many positions one replacement pass
// overwrites for a password of length n. The count grows with n, then
// plateaus at [MaxReplacements]; it never drops below 2.
func replacementLength(n int) int {
	r := min((n/2)/3, MaxReplacements)
	if n < MinLengthForManyClasses || r < 2 {
		r = 2
	}
	return r
}
