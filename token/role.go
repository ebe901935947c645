// Copyright 2022-2026 The codetidy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

import "fmt"

// Role is the syntactic role assigned to a token by upstream analysis.
//
// Roles mark structure the rule engines would otherwise have to parse for:
// most importantly, which control statement an sparen pair belongs to.
type Role byte

const (
	RoleNone Role = iota
	RoleIf
	RoleElseIf
	RoleSwitch
	RoleWhile
	RoleDo
	RoleFor
)

var roleNames = map[Role]string{
	RoleNone:   "None",
	RoleIf:     "If",
	RoleElseIf: "ElseIf",
	RoleSwitch: "Switch",
	RoleWhile:  "While",
	RoleDo:     "Do",
	RoleFor:    "For",
}

// String implements [fmt.Stringer].
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("token.Role(%d)", int(r))
}

var rolesByName = func() map[string]Role {
	m := make(map[string]Role, len(roleNames))
	for r, name := range roleNames {
		m[name] = r
	}
	return m
}()

// RoleByName returns the role with the given [Role.String] name.
func RoleByName(name string) (Role, bool) {
	r, ok := rolesByName[name]
	return r, ok
}

// Flags is a bit set of token properties assigned upstream.
type Flags uint16

const (
	// FlagStatementStart marks the first token of a statement.
	FlagStatementStart Flags = 1 << iota
	// FlagInPreproc marks a token that lives inside a preprocessor
	// directive.
	FlagInPreproc
)

// Has returns whether all bits of f are set in fs.
func (fs Flags) Has(f Flags) bool {
	return fs&f == f
}
