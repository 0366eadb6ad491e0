// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package differ

import (
	"fmt"

	"github.com/consensys/go-differ/pkg/ast"
)

// UnsupportedOperatorError is reported when differentiating an operator which
// has no differentiation rule (e.g. the factorial).
type UnsupportedOperatorError struct {
	Op ast.Op
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("cannot differentiate \"%s\"", e.Op.Name())
}

// NumericAnomalyError is reported by checked evaluation when an operator
// produces an infinity or NaN from finite operands (e.g. division by zero, or
// the logarithm of a negative number).
type NumericAnomalyError struct {
	Op     ast.Op
	Lhs    float64
	Rhs    float64
	Result float64
}

func (e *NumericAnomalyError) Error() string {
	if e.Op.IsBinary() {
		return fmt.Sprintf("numeric anomaly: %s(%g, %g) = %g", e.Op.Name(), e.Lhs, e.Rhs, e.Result)
	}
	//
	return fmt.Sprintf("numeric anomaly: %s(%g) = %g", e.Op.Name(), e.Lhs, e.Result)
}
