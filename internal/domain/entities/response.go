package entities

// Response is the uniform envelope every service call returns, whether backed
// by the in-memory demo layer or the real backend. Callers never branch on
// transport: they read Success/Message/Data and nothing else.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// OK wraps data in a successful envelope.
func OK[T any](message string, data T) *Response[T] {
	return &Response[T]{Success: true, Message: message, Data: data}
}

// Fail builds a failure envelope with no payload.
func Fail(message string) *Response[any] {
	return &Response[any]{Success: false, Message: message}
}
