package traverse

import "fmt"

// ContractError is panicked when the caller-supplied input source
// violates its contract: returning a value after it has already
// signaled end-of-input once. This is undefined behavior that the core
// must not silently paper over by re-opening the input; there is no
// recovery path, so it surfaces as a panic rather than an error return.
type ContractError struct {
	Message string
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	return e.Message
}

func newContractError(format string, args ...any) *ContractError {
	return &ContractError{Message: fmt.Sprintf(format, args...)}
}
