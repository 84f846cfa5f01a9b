package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Turns pointers into memorable names for debug output. Pointer strings are
// useless when staring at a trapezoid dump; "WackyHeron" is not. The memo
// table is never evicted, which is fine for something only debug paths touch.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in demand order, so keep them nondeterministic as a
	// reminder that they don't survive between runs.
	petname.NonDeterministicMode()
}

// Name returns a readable name for the object, stable within this process.
func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
