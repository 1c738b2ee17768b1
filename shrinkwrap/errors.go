package shrinkwrap

import "errors"

// Sentinel errors returned by the codec, unwrapped. Compare with == or
// errors.Is.
var (
	// ErrOutOfBounds means the front cursor would overrun the tail cursor.
	ErrOutOfBounds = errors.New("shrinkwrap: out of bounds")

	// ErrOutOfBoundsRev means the tail cursor would underrun the front cursor.
	ErrOutOfBoundsRev = errors.New("shrinkwrap: out of bounds (reverse)")

	// ErrMalformedUNib32 means a Nib32 ran past 11 nibbles without a
	// terminating (non-continuation) nibble.
	ErrMalformedUNib32 = errors.New("shrinkwrap: malformed unib32")

	// ErrMalformedUtf8 means a str/String field's bytes are not valid UTF-8.
	ErrMalformedUtf8 = errors.New("shrinkwrap: malformed utf8")

	// ErrInvalidBitCount means a WriteUN/ReadUN call requested 0 or >32 bits.
	ErrInvalidBitCount = errors.New("shrinkwrap: invalid bit count")

	// ErrSubtypeOutOfRange means a decoded discriminant or subtype value
	// does not fit the declared width.
	ErrSubtypeOutOfRange = errors.New("shrinkwrap: subtype out of range")

	// ErrItemTooLong means a value's encoded byte length exceeds what a
	// Nib32 tail entry can represent.
	ErrItemTooLong = errors.New("shrinkwrap: item too long")

	// ErrStrTooLong means a string's byte length exceeds the supported range.
	ErrStrTooLong = errors.New("shrinkwrap: string too long")

	// ErrVecTooLong means a vector's element count exceeds the supported range.
	ErrVecTooLong = errors.New("shrinkwrap: vector too long")

	// ErrEnumFutureVersionOrMalformedData means a decoded enum discriminant
	// does not match any variant known to this build.
	ErrEnumFutureVersionOrMalformedData = errors.New("shrinkwrap: unknown enum discriminant (future version or malformed data)")
)
