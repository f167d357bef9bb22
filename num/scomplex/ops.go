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

package scomplex

import "github.com/ajroetker/go-numeric/num"

// Ops is the coefficient-algebra adapter that lets SComplex[T] serve as
// the element type of the generic quaternion engine (quat.Ring).
type Ops[T num.Float] struct{}

// Zero returns 0.
func (Ops[T]) Zero() SComplex[T] { return SComplex[T]{} }

// One returns 1.
func (Ops[T]) One() SComplex[T] { return SComplex[T]{re: 1} }

// Add returns a + b.
func (Ops[T]) Add(a, b SComplex[T]) SComplex[T] { return a.Add(b) }

// Sub returns a − b.
func (Ops[T]) Sub(a, b SComplex[T]) SComplex[T] { return a.Sub(b) }

// Mul returns a·b.
func (Ops[T]) Mul(a, b SComplex[T]) SComplex[T] { return a.Mul(b) }

// Neg returns −a.
func (Ops[T]) Neg(a SComplex[T]) SComplex[T] { return a.Neg() }

// Conj returns the split-complex conjugate of a.
func (Ops[T]) Conj(a SComplex[T]) SComplex[T] { return a.Conj() }
