package ir

import (
	"errors"
	"fmt"
)

// Error represents a construction or precondition failure in the IR.
//
// All IR errors are caller errors raised synchronously at construction time.
// The core never catches or retries them; they propagate to whatever driver
// is running the current pass.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string
}

// ErrorCode categorizes IR errors.
type ErrorCode string

const (
	// ErrCodeInvalidAxis indicates input not convertible to exactly 3 real
	// numbers, or a zero vector that cannot be normalized.
	ErrCodeInvalidAxis ErrorCode = "INVALID_AXIS"

	// ErrCodeUnnormalizedAngle indicates an angle passed to a decomposer
	// outside (-pi-ATOL, pi+ATOL].
	ErrCodeUnnormalizedAngle ErrorCode = "UNNORMALIZED_ANGLE"

	// ErrCodeInvalidOperandCount indicates a MatrixGate built with fewer than
	// 2 operands.
	ErrCodeInvalidOperandCount ErrorCode = "INVALID_OPERAND_COUNT"

	// ErrCodeDuplicateOperand indicates a repeated qubit among a gate's
	// operands, or a control qubit colliding with its target's operands.
	ErrCodeDuplicateOperand ErrorCode = "DUPLICATE_OPERAND"

	// ErrCodeMatrixShapeMismatch indicates a matrix whose shape does not
	// match 2^(operand count).
	ErrCodeMatrixShapeMismatch ErrorCode = "MATRIX_SHAPE_MISMATCH"

	// ErrCodeIllegalCommentContent indicates comment text containing the
	// block-comment terminator of the target textual syntax.
	ErrCodeIllegalCommentContent ErrorCode = "ILLEGAL_COMMENT_CONTENT"
)

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// HasErrorCode returns true if err is (or wraps) an ir.Error with the given code.
func HasErrorCode(err error, code ErrorCode) bool {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Code == code
	}
	return false
}

// IsInvalidAxis returns true if the error is an INVALID_AXIS error.
func IsInvalidAxis(err error) bool { return HasErrorCode(err, ErrCodeInvalidAxis) }

// IsUnnormalizedAngle returns true if the error is an UNNORMALIZED_ANGLE error.
func IsUnnormalizedAngle(err error) bool { return HasErrorCode(err, ErrCodeUnnormalizedAngle) }

// IsInvalidOperandCount returns true if the error is an INVALID_OPERAND_COUNT error.
func IsInvalidOperandCount(err error) bool { return HasErrorCode(err, ErrCodeInvalidOperandCount) }

// IsDuplicateOperand returns true if the error is a DUPLICATE_OPERAND error.
func IsDuplicateOperand(err error) bool { return HasErrorCode(err, ErrCodeDuplicateOperand) }

// IsMatrixShapeMismatch returns true if the error is a MATRIX_SHAPE_MISMATCH error.
func IsMatrixShapeMismatch(err error) bool { return HasErrorCode(err, ErrCodeMatrixShapeMismatch) }

// IsIllegalCommentContent returns true if the error is an ILLEGAL_COMMENT_CONTENT error.
func IsIllegalCommentContent(err error) bool { return HasErrorCode(err, ErrCodeIllegalCommentContent) }
