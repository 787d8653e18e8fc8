package to

// Outcome is the (value, error) pair as a single value, for when the pair
// has to be stored or sent over a channel.
// Exactly one side is set: Err is nil on success, Value is the zero value on failure.
type Outcome[R any] struct {
	Value R
	Err   error
}

func (o Outcome[R]) Unpack() (R, error) {
	return o.Value, o.Err
}

func (o Outcome[R]) IsOk() bool {
	return o.Err == nil
}

func (o Outcome[R]) IsErr() bool {
	return o.Err != nil
}
