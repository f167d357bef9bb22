// Copyright 2025 go-numeric Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package interval provides closed one-dimensional intervals [lo,hi]
// with interval arithmetic: arithmetic on intervals yields the
// tightest interval containing every pointwise result.
//
// The bounds invariant lo <= hi is maintained by every constructor and
// mutator, so operations never have to re-check it. The zero value is
// the degenerate interval [0,0].
//
// Usage:
//
//	a := interval.New(1.0, 3.0)
//	b := interval.New(5.0, 2.0)  // bounds swap: [2,5]
//	sum := a.Add(b)              // [3,8]
//	if a.Intersects(b) { ... }
package interval

import (
	"fmt"
	stdmath "math"

	"github.com/ajroetker/go-numeric/num"
)

// Interval is a closed interval over T with lo <= hi.
type Interval[T num.Float] struct {
	lo, hi T
}

// New returns the interval with the given bounds, swapping them if
// they arrive out of order.
func New[T num.Float](a, b T) Interval[T] {
	if a > b {
		a, b = b, a
	}
	return Interval[T]{lo: a, hi: b}
}

// FromPoint returns the degenerate interval [v,v].
func FromPoint[T num.Float](v T) Interval[T] {
	return Interval[T]{lo: v, hi: v}
}

// FromCenterHalfWidth returns the interval [c−hw, c+hw].
func FromCenterHalfWidth[T num.Float](c, hw T) Interval[T] {
	return New(c-hw, c+hw)
}

// FromCenterWidth returns the interval of the given width centered on c.
func FromCenterWidth[T num.Float](c, w T) Interval[T] {
	return FromCenterHalfWidth(c, w/2)
}

// Widen converts a float32 interval to any wider float type.
func Widen[T num.Float](i Interval[float32]) Interval[T] {
	return Interval[T]{lo: T(i.lo), hi: T(i.hi)}
}

// Min returns the lower bound.
func (i Interval[T]) Min() T { return i.lo }

// Max returns the upper bound.
func (i Interval[T]) Max() T { return i.hi }

// Center returns the midpoint (lo+hi)/2.
func (i Interval[T]) Center() T { return (i.lo + i.hi) / 2 }

// Width returns hi − lo.
func (i Interval[T]) Width() T { return i.hi - i.lo }

// HalfWidth returns (hi − lo)/2.
func (i Interval[T]) HalfWidth() T { return (i.hi - i.lo) / 2 }

// Set replaces both bounds, swapping them if out of order.
func (i *Interval[T]) Set(a, b T) {
	if a > b {
		a, b = b, a
	}
	i.lo, i.hi = a, b
}

// SetMin replaces the lower bound, dragging the upper bound up to it
// if the interval would invert.
func (i *Interval[T]) SetMin(v T) {
	i.lo = v
	if i.hi < i.lo {
		i.hi = i.lo
	}
}

// SetMax replaces the upper bound, clamping it to the lower bound if
// the interval would invert.
func (i *Interval[T]) SetMax(v T) {
	i.hi = v
	if i.hi < i.lo {
		i.hi = i.lo
	}
}

// SetCenter translates the interval so its midpoint becomes c. The
// width is preserved.
func (i *Interval[T]) SetCenter(c T) {
	i.Translate(c - i.Center())
}

// SetHalfWidth grows or shrinks the interval symmetrically about its
// center until its half-width becomes hw.
func (i *Interval[T]) SetHalfWidth(hw T) {
	i.Expand(hw - i.HalfWidth())
}

// SetWidth grows or shrinks the interval symmetrically about its
// center until its width becomes w.
func (i *Interval[T]) SetWidth(w T) {
	i.Expand((w - i.Width()) / 2)
}

// SetCenterHalfWidth replaces the interval with [c−hw, c+hw].
func (i *Interval[T]) SetCenterHalfWidth(c, hw T) {
	i.Set(c-hw, c+hw)
}

// Clear resets to the degenerate interval [0,0].
func (i *Interval[T]) Clear() {
	i.lo, i.hi = 0, 0
}

// Expand moves both bounds outward by amount (inward for negative
// amounts).
func (i *Interval[T]) Expand(amount T) {
	i.lo -= amount
	i.hi += amount
}

// ExpandInclude grows the interval just enough to contain o, padding
// any moved bound by offset.
func (i *Interval[T]) ExpandInclude(o Interval[T], offset T) {
	if o.lo < i.lo {
		i.lo = o.lo - offset
	}
	if o.hi > i.hi {
		i.hi = o.hi + offset
	}
}

// ExpandIncludeValue grows the interval just enough to contain v,
// padding any moved bound by offset.
func (i *Interval[T]) ExpandIncludeValue(v, offset T) {
	if v < i.lo {
		i.lo = v - offset
	}
	if v > i.hi {
		i.hi = v + offset
	}
}

// ShrinkExclude moves the bound nearest to v just past it so the
// interval no longer contains v. Points outside leave the interval
// unchanged; if stepping past v would invert the bounds the interval
// collapses onto the remaining bound.
func (i *Interval[T]) ShrinkExclude(v, offset T) {
	if v < i.lo || v > i.hi {
		return
	}
	if v-i.lo <= i.hi-v {
		i.lo = v + offset
		if i.lo > i.hi {
			i.lo = i.hi
		}
	} else {
		i.hi = v - offset
		if i.hi < i.lo {
			i.hi = i.lo
		}
	}
}

// Translate shifts both bounds by amount.
func (i *Interval[T]) Translate(amount T) {
	i.lo += amount
	i.hi += amount
}

// AddScalar returns the interval shifted up by s.
func (i Interval[T]) AddScalar(s T) Interval[T] {
	return Interval[T]{lo: i.lo + s, hi: i.hi + s}
}

// SubScalar returns the interval shifted down by s.
func (i Interval[T]) SubScalar(s T) Interval[T] {
	return Interval[T]{lo: i.lo - s, hi: i.hi - s}
}

// MulScalar scales the interval about its center by factor. The
// center stays fixed; the width is multiplied by factor.
func (i Interval[T]) MulScalar(factor T) Interval[T] {
	omf := 1 - factor
	opf := 1 + factor
	return New((omf*i.hi+opf*i.lo)/2, (opf*i.hi+omf*i.lo)/2)
}

// DivScalar scales the interval about its center by 1/factor.
func (i Interval[T]) DivScalar(factor T) Interval[T] {
	return i.MulScalar(1 / factor)
}

// Add returns the interval sum [a.lo+b.lo, a.hi+b.hi].
func (i Interval[T]) Add(o Interval[T]) Interval[T] {
	return Interval[T]{lo: i.lo + o.lo, hi: i.hi + o.hi}
}

// Sub returns the interval difference [a.lo−b.hi, a.hi−b.lo].
func (i Interval[T]) Sub(o Interval[T]) Interval[T] {
	return Interval[T]{lo: i.lo - o.hi, hi: i.hi - o.lo}
}

// Mul returns the interval product, the min and max over the four
// cross products of the bounds.
func (i Interval[T]) Mul(o Interval[T]) Interval[T] {
	ll := i.lo * o.lo
	hl := i.hi * o.lo
	lh := i.lo * o.hi
	hh := i.hi * o.hi
	return Interval[T]{
		lo: num.Min(num.Min(ll, hl), num.Min(lh, hh)),
		hi: num.Max(num.Max(ll, hl), num.Max(lh, hh)),
	}
}

// Div returns the interval quotient. A divisor spanning zero has no
// bounded quotient; that case collapses to [0,0].
func (i Interval[T]) Div(o Interval[T]) Interval[T] {
	if o.lo <= 0 && o.hi >= 0 {
		return Interval[T]{}
	}
	ll := i.lo / o.lo
	hl := i.hi / o.lo
	lh := i.lo / o.hi
	hh := i.hi / o.hi
	return Interval[T]{
		lo: num.Min(num.Min(ll, hl), num.Min(lh, hh)),
		hi: num.Max(num.Max(ll, hl), num.Max(lh, hh)),
	}
}

// Empty reports whether the width is at most the default tolerance
// for T.
func (i Interval[T]) Empty() bool {
	return i.EmptyIn(num.Eps[T]())
}

// EmptyIn reports whether the width is at most tol.
func (i Interval[T]) EmptyIn(tol T) bool {
	return num.Abs(i.hi-i.lo) <= tol
}

// Contains reports whether v lies inside the closed interval.
func (i Interval[T]) Contains(v T) bool {
	return v >= i.lo && v <= i.hi
}

// ContainsInterval reports whether o lies entirely inside i.
func (i Interval[T]) ContainsInterval(o Interval[T]) bool {
	return i.lo <= o.lo && i.hi >= o.hi
}

// Intersects reports whether the two closed intervals share at least
// one point.
func (i Interval[T]) Intersects(o Interval[T]) bool {
	if i.lo < o.lo {
		return i.hi >= o.lo
	}
	return i.lo <= o.hi
}

// Disjoint reports whether the two intervals share no point.
func (i Interval[T]) Disjoint(o Interval[T]) bool {
	return !i.Intersects(o)
}

// PenetrationDepth returns how far v sits inside the interval: the
// distance to the nearest bound, or 0 if v is outside or on a bound.
func (i Interval[T]) PenetrationDepth(v T) T {
	if v <= i.lo || v >= i.hi {
		return 0
	}
	return num.Min(v-i.lo, i.hi-v)
}

// Distance returns how far v sits outside the interval, or 0 if it is
// contained.
func (i Interval[T]) Distance(v T) T {
	if v < i.lo {
		return i.lo - v
	}
	if v > i.hi {
		return v - i.hi
	}
	return 0
}

// PenetrationDepth returns the overlap depth of two intervals, or 0 if
// they are disjoint.
func PenetrationDepth[T num.Float](a, b Interval[T]) T {
	var p T
	if b.lo > a.lo {
		p = a.hi - b.lo
	} else {
		p = b.hi - a.lo
	}
	if p > 0 {
		return p
	}
	return 0
}

// Distance returns the gap between two intervals, or 0 if they
// overlap.
func Distance[T num.Float](a, b Interval[T]) T {
	var p T
	if b.lo > a.lo {
		p = b.lo - a.hi
	} else {
		p = a.lo - b.hi
	}
	if p > 0 {
		return p
	}
	return 0
}

// Intersection returns the common sub-interval of a and b, or the
// degenerate [0,0] if they are disjoint.
func Intersection[T num.Float](a, b Interval[T]) Interval[T] {
	if a.lo > b.hi || a.hi < b.lo {
		return Interval[T]{}
	}
	return Interval[T]{lo: num.Max(a.lo, b.lo), hi: num.Min(a.hi, b.hi)}
}

// Narrower reports whether a has strictly smaller width than b.
func Narrower[T num.Float](a, b Interval[T]) bool {
	return a.Width() < b.Width()
}

// Wider reports whether a has strictly larger width than b.
func Wider[T num.Float](a, b Interval[T]) bool {
	return a.Width() > b.Width()
}

// Equal reports exact equality of both bounds.
func (i Interval[T]) Equal(o Interval[T]) bool {
	return i.lo == o.lo && i.hi == o.hi
}

// ApproxEqualIn reports equality of both bounds within tol.
func (i Interval[T]) ApproxEqualIn(o Interval[T], tol T) bool {
	return num.ApproxEqualIn(i.lo, o.lo, tol) && num.ApproxEqualIn(i.hi, o.hi, tol)
}

// ApproxEqual reports equality of both bounds within the default
// tolerance for T.
func (i Interval[T]) ApproxEqual(o Interval[T]) bool {
	return i.ApproxEqualIn(o, num.Eps[T]())
}

// IsFinite reports whether both bounds are finite.
func (i Interval[T]) IsFinite() bool {
	return !stdmath.IsInf(float64(i.lo), 0) && !stdmath.IsInf(float64(i.hi), 0) &&
		!stdmath.IsNaN(float64(i.lo)) && !stdmath.IsNaN(float64(i.hi))
}

// String renders the print form "[lo,hi]".
func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v,%v]", i.lo, i.hi)
}
