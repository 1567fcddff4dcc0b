// Some helpers using closures to generate argument values
package valgen

import "math/rand"

// Gen yields one value per call.
type Gen func() interface{}

func MakeConstGen(constant interface{}) Gen {
	return func() interface{} {
		return constant
	}
}

func MakeIncreasingGen(start int) Gen {
	current := start
	return func() interface{} {
		current++
		return current
	}
}

// MakeRandomIntGen yields ints in [lo, hi].
func MakeRandomIntGen(r *rand.Rand, lo, hi int) Gen {
	return func() interface{} {
		return lo + r.Intn(hi-lo+1)
	}
}

// MakeCycleGen yields values in turn, starting over after the last one.
func MakeCycleGen(values ...interface{}) Gen {
	i := -1
	return func() interface{} {
		i = (i + 1) % len(values)
		return values[i]
	}
}

// Args draws n argument lists, taking one value from each generator per
// list.
func Args(n int, gens ...Gen) [][]interface{} {
	out := make([][]interface{}, n)
	for i := range out {
		args := make([]interface{}, len(gens))
		for j, g := range gens {
			args[j] = g()
		}
		out[i] = args
	}
	return out
}
