/*
Package rrbvec implements a persistent, immutable indexed sequence: a
Relaxed Radix Balanced (RRB) vector with a branching factor of 32.

RRB vectors

An RRB vector is a trie of fixed-size (32-element) nodes. Random access,
update, append and prepend run in effectively-constant time (bounded by
the trie depth, at most 6 for this implementation); concatenation runs
in time proportional to the number of nodes touched while rebalancing,
not to the size of either operand.

Every operation returns a new vector. Derived vectors share structure
with their source: only the nodes on the path to a changed element are
copied, everything else is shared by reference. A vector never mutates
a node that another vector might already be holding — every mutating
operation, including Append and Prepend, builds a fresh spine from the
touched leaf up to a fresh root rather than mutating any existing node
in place. Because the trie's depth is capped at internal/trie.MaxDepth,
that path copy is still effectively constant time; what it gives up,
relative to a scheme that recognizes and mutates a freshly allocated,
not-yet-shared tail block, is amortizing a long run of appends down
from one path copy per call to one path copy total. Two vectors derived
from the same source always behave as fully independent copies.

From Nicolas Stucki, Tiark Rompf, Vlad Ureche and Phil Bagwell, 2015:

RRB Vector: A Practical General Purpose Immutable Sequence

EPFL, Lausanne, Switzerland

Bagwell and Rompf's original Vector trie (as used by Clojure and early
Scala) supports fast append/prepend and indexed access but concatenation
is linear in the size of the smaller operand, since no relaxed nodes
exist: every node has exactly 32 children. The "relaxed" variant adds an
optional size table to each internal node so that children need not all
be full; navigation then walks the size table as a sorted prefix-sum
array instead of bit-slicing raw offsets. This keeps every other
operation effectively unchanged while turning concatenation from O(n)
into O(log n).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rrbvec

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// VecError is the error type used throughout this module.
type VecError string

func (e VecError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever an index is outside [0, length).
const ErrIndexOutOfBounds = VecError("index out of bounds")

// ErrEmptyVector is flagged by Head/Last/Tail/Init on an empty vector.
const ErrEmptyVector = VecError("vector is empty")

// ErrIteratorExhausted is flagged when Next is called past the end of
// an Iterator or ReverseIterator.
const ErrIteratorExhausted = VecError("iterator exhausted")

// ErrBuilderDone is flagged by Add/AddAll/AddSlice/AddVector once
// Result has already been called on a Builder.
const ErrBuilderDone = VecError("builder has already produced its result")

// ErrInvariantViolation indicates a bug in the trie itself: an
// unreachable bit magnitude, an unexpected depth, or a broken size
// table. No code in this module returns or panics with this value:
// invariant failures inside the trie panic with internal/trie.ErrInvariant
// (see internal/trie.assertInvariant), which errors.Is does not match
// against ErrInvariantViolation.
const ErrInvariantViolation = VecError("internal invariant violation")
