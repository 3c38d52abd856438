// Package random is a convenience random value generator for development,
// testing, and prototyping: unit tests that need random data, placeholder
// values, quick experiments.
//
// It is deliberately limited: the generator is not cryptographically secure,
// and the package keeps a single process-wide generator state. Value
// generation is safe for concurrent use, but SetSeed must not race other
// calls. For cryptographic randomness or independent generator state use
// crypto/rand or math/rand/v2 directly.
package random

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/secutil/secutil/errdefs"
)

const defaultCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

var (
	mutex sync.Mutex
	rng   = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
)

// SetSeed reseeds the generator so subsequent values are reproducible.
// Not safe to call concurrently with value generation.
func SetSeed(seed int64) {
	mutex.Lock()
	defer mutex.Unlock()
	rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// Int returns a uniformly distributed int in [min, max]. Both bounds are
// inclusive. It panics if min > max.
func Int(min, max int) int {
	return int(Int64(int64(min), int64(max)))
}

// Int64 returns a uniformly distributed int64 in [min, max]. Both bounds are
// inclusive. It panics if min > max.
func Int64(min, max int64) int64 {
	if min > max {
		panic(errdefs.New(errdefs.ErrArgumentOutOfRange, "random: min must not exceed max"))
	}

	span := uint64(max) - uint64(min) + 1

	mutex.Lock()
	defer mutex.Unlock()

	if span == 0 {
		// Full int64 range
		return int64(rng.Uint64())
	}
	return min + int64(rng.Uint64N(span))
}

// Uint64 returns a uniformly distributed uint64.
func Uint64() uint64 {
	mutex.Lock()
	defer mutex.Unlock()
	return rng.Uint64()
}

// Float64 returns a uniformly distributed float64 in [min, max).
// It panics if min > max.
func Float64(min, max float64) float64 {
	if min > max {
		panic(errdefs.New(errdefs.ErrArgumentOutOfRange, "random: min must not exceed max"))
	}

	mutex.Lock()
	defer mutex.Unlock()
	return min + rng.Float64()*(max-min)
}

// Float32 returns a uniformly distributed float32 in [min, max).
// It panics if min > max.
func Float32(min, max float32) float32 {
	if min > max {
		panic(errdefs.New(errdefs.ErrArgumentOutOfRange, "random: min must not exceed max"))
	}

	mutex.Lock()
	defer mutex.Unlock()
	return min + rng.Float32()*(max-min)
}

// String returns a random string of length n drawn from letters and digits.
func String(n int) string {
	return StringFrom(n, defaultCharset)
}

// StringFrom returns a random string of length n drawn from the given
// charset. It panics if the charset is empty.
func StringFrom(n int, charset string) string {
	if len(charset) == 0 {
		panic(errdefs.New(errdefs.ErrInvalidArgument, "random: charset must not be empty"))
	}

	mutex.Lock()
	defer mutex.Unlock()

	result := make([]byte, n)
	for i := range result {
		result[i] = charset[rng.IntN(len(charset))]
	}
	return string(result)
}

// UUID returns a random (version 4) UUID in its canonical string form.
func UUID() string {
	return uuid.NewString()
}
