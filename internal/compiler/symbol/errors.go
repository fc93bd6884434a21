// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package symbol

import (
	"fmt"

	"github.com/google/tacgen/internal/compiler/position"
)

// RedeclarationError is returned when a name is declared twice in one scope.
type RedeclarationError struct {
	Name  string
	Scope int
	Pos   *position.Position // position of the rejected declaration, may be nil
	Prev  Symbol             // the symbol already in the table
}

func (e *RedeclarationError) Error() string {
	msg := fmt.Sprintf("Redeclaration of `%s' in scope %d", e.Name, e.Scope)
	if e.Prev.Pos != nil {
		msg += " previously declared at " + e.Prev.Pos.String()
	}
	return msg
}

// CapacityExceededError is returned when a declaration would grow the table
// past its configured limit.
type CapacityExceededError struct {
	Max int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("Symbol table overflow: limit of %d symbols reached", e.Max)
}

// NotFoundError is returned when a name is in neither the requested scope
// nor the global scope.
type NotFoundError struct {
	Name  string
	Scope int
}

func (e *NotFoundError) Error() string {
	if e.Scope == Global {
		return fmt.Sprintf("Identifier `%s' not declared in the global scope", e.Name)
	}
	return fmt.Sprintf("Identifier `%s' not declared in scope %d or the global scope", e.Name, e.Scope)
}
