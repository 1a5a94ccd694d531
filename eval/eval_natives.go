/*
File    : ember/eval/eval_natives.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

The only native builtin spec.md defines is clock(), arity 0, returning
milliseconds since epoch (section 12 / SPEC_FULL.md carries this over
from the original Rust rlox's native.rs `clock` builtin). Wall-clock time
has no ecosystem library candidate among the example repos worth
reaching for over the standard library's time package — see DESIGN.md.
*/
package eval

import "time"

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
