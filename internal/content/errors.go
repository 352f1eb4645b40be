package content

import "fmt"

// FetchError reports that a backend could not be reached or returned a
// response that could not be understood.
type FetchError struct {
	Backend string
	Op      string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("content: %s backend: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IntegrityError reports structurally valid but semantically incomplete
// content, such as a project without a hero image.
type IntegrityError struct {
	Backend string
	Subject string
	Problem string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("content: %s backend: %s: %s", e.Backend, e.Subject, e.Problem)
}
