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

package interval

import (
	"github.com/ajroetker/go-numeric/num"
)

// Consolidate merges add into a list of intervals kept sorted by
// bounds. The list only grows outward: add is inserted when it
// establishes a new global minimum or maximum, swallowing any existing
// intervals it covers. It reports whether the list changed; an add
// that neither lowers the minimum nor raises the maximum leaves the
// list untouched.
func Consolidate[T num.Float](list *[]Interval[T], add Interval[T]) bool {
	cur := *list
	if len(cur) == 0 {
		*list = append(cur, add)
		return true
	}

	newMin := add.Min() < cur[0].Min()
	newMax := add.Max() > cur[len(cur)-1].Max()

	switch {
	case newMin && newMax:
		// add covers everything
		*list = append(cur[:0], add)
		return true

	case newMin:
		// drop leading intervals whose maximum add covers
		i := 0
		for i < len(cur) && add.Max() > cur[i].Max() {
			i++
		}
		cur = append(cur[:1], cur[i:]...)
		cur[0] = add
		*list = cur
		return true

	case newMax:
		// drop trailing intervals whose minimum add covers
		for len(cur) > 0 && add.Min() < cur[len(cur)-1].Min() {
			cur = cur[:len(cur)-1]
		}
		*list = append(cur, add)
		return true
	}

	return false
}
