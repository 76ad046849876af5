package schema

// Result is the outcome of a single Validate call.
//
// When Success is true, Data holds the validated value and Issues is empty.
// Present is false only when an optional validator received a nil input; Data
// is then the zero value and composites leave the value out of their output.
// When Success is false, Issues holds at least one entry and Data is zero.
type Result[T any] struct {
	Success bool
	Data    T
	Present bool
	Issues  Issues
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data, Present: true}
}

func absent[T any]() Result[T] {
	return Result[T]{Success: true}
}

func fail[T any](issues ...Issue) Result[T] {
	return Result[T]{Issues: issues}
}

// Errors returns the rendered error messages, or nil on success.
func (r Result[T]) Errors() []string {
	if r.Success {
		return nil
	}
	return r.Issues.Messages()
}

// Err returns the issues as an error, or nil on success.
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}
	return r.Issues
}

// Unwrap returns the data and the error in the usual Go shape.
func (r Result[T]) Unwrap() (T, error) {
	return r.Data, r.Err()
}

// erase converts the result to Result[any], keeping an absent value as nil.
func (r Result[T]) erase() Result[any] {
	out := Result[any]{Success: r.Success, Present: r.Present, Issues: r.Issues}
	if r.Success && r.Present {
		out.Data = r.Data
	}
	return out
}
