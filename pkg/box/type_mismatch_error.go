package box

import (
	"errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// TypeMismatchReason is the reason stored in the ErrorInfo detail
	// of the gRPC status of a TypeMismatchError.
	TypeMismatchReason = "TYPE_MISMATCH"
	// TypeMismatchDomain is the domain stored in the ErrorInfo detail
	// of the gRPC status of a TypeMismatchError.
	TypeMismatchDomain = "hostbox"
)

// TypeMismatchError is returned when the value held by a box is
// restored to a type that is incompatible with the value's actual
// type. This is always an error on the caller's side.
type TypeMismatchError struct {
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("got %s, want %s", e.Got, e.Want)
}

// GRPCStatus converts the error to a gRPC status with code
// INVALID_ARGUMENT. This ensures that the code is retained when the
// error is wrapped using util.StatusWrap().
func (e *TypeMismatchError) GRPCStatus() *status.Status {
	s := status.New(codes.InvalidArgument, e.Error())
	if withDetails, err := s.WithDetails(&errdetails.ErrorInfo{
		Reason: TypeMismatchReason,
		Domain: TypeMismatchDomain,
		Metadata: map[string]string{
			"want": e.Want,
			"got":  e.Got,
		},
	}); err == nil {
		return withDetails
	}
	return s
}

// IsTypeMismatch returns true if the error, or any error it wraps, is
// a TypeMismatchError. As util.StatusWrap() flattens errors into plain
// gRPC statuses, the ErrorInfo detail is inspected as well.
func IsTypeMismatch(err error) bool {
	var typeMismatch *TypeMismatchError
	if errors.As(err, &typeMismatch) {
		return true
	}
	s, ok := status.FromError(err)
	if !ok || s.Code() != codes.InvalidArgument {
		return false
	}
	for _, detail := range s.Details() {
		if errorInfo, ok := detail.(*errdetails.ErrorInfo); ok &&
			errorInfo.Reason == TypeMismatchReason &&
			errorInfo.Domain == TypeMismatchDomain {
			return true
		}
	}
	return false
}
