package domain

// Result is the uniform envelope returned by every boundary operation in
// place of an error. A failed Result always carries a user-facing Message.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status,omitempty"`
}

// OK builds a successful envelope.
func OK[T any](data T, status int) Result[T] {
	return Result[T]{Success: true, Data: data, Status: status}
}

// Fail builds a failed envelope.
func Fail[T any](message string, status int) Result[T] {
	return Result[T]{Success: false, Message: message, Status: status}
}

// Any erases the payload type so results of different shapes can travel
// through one batch.
func (r Result[T]) Any() Result[any] {
	out := Result[any]{Success: r.Success, Message: r.Message, Status: r.Status}
	if r.Success {
		out.Data = r.Data
	}
	return out
}

// Recast carries a failure over to another payload type.
func Recast[T, U any](r Result[T]) Result[U] {
	return Result[U]{Success: r.Success, Message: r.Message, Status: r.Status}
}
