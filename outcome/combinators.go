package outcome

// Map applies f to the value of a successful outcome and keeps its warnings.
// A failure passes through unchanged.
func Map[T, U, M any](o Outcome[T, M], f func(T) U) Outcome[U, M] {
	if !o.ok {
		return Outcome[U, M]{messages: o.messages}
	}
	return Outcome[U, M]{value: f(o.value), messages: o.messages, ok: true}
}

// Bind chains an outcome-producing function onto a successful outcome.
//
// Success(v, w1) with f(v) = Success(u, w2) gives Success(u, w1 ++ w2).
// Success(v, w1) with f(v) = Failure(e) gives Failure(w1 ++ e): the earlier
// warnings are kept in front of the errors as context.
// Failure(e) short-circuits to Failure(e) without calling f.
func Bind[T, U, M any](o Outcome[T, M], f func(T) Outcome[U, M]) Outcome[U, M] {
	if !o.ok {
		return Outcome[U, M]{messages: o.messages}
	}

	next := f(o.value)
	if next.ok {
		return Outcome[U, M]{value: next.value, messages: concat(o.messages, next.messages), ok: true}
	}
	return Outcome[U, M]{messages: concat(o.messages, next.messages)}
}

// Apply applies a wrapped function to a wrapped value.
//
// Both successful: Success(f(x), m1 ++ m2).
// Exactly one failed: that operand's errors only.
// Both failed: the errors of wf followed by the errors of wx.
func Apply[T, U, M any](wf Outcome[func(T) U, M], wx Outcome[T, M]) Outcome[U, M] {
	switch {
	case wf.ok && wx.ok:
		return Outcome[U, M]{value: wf.value(wx.value), messages: concat(wf.messages, wx.messages), ok: true}
	case wf.ok:
		return Outcome[U, M]{messages: wx.messages}
	case wx.ok:
		return Outcome[U, M]{messages: wf.messages}
	default:
		return Outcome[U, M]{messages: concat(wf.messages, wx.messages)}
	}
}

// Lift2 combines two outcomes with a plain two-argument function,
// accumulating errors from both sides.
func Lift2[A, B, C, M any](f func(A, B) C, a Outcome[A, M], b Outcome[B, M]) Outcome[C, M] {
	curried := Map(a, func(x A) func(B) C {
		return func(y B) C { return f(x, y) }
	})
	return Apply(curried, b)
}

// Collect turns a sequence of outcomes into an outcome of a sequence.
//
// When every element succeeded the result holds all values in input order and
// all warnings concatenated in input order. Otherwise the result is a failure
// holding the errors of every failed element in input order; it does not stop
// at the first failure.
func Collect[T, M any](outcomes ...Outcome[T, M]) Outcome[[]T, M] {
	values := make([]T, 0, len(outcomes))
	var warnings, errs []M
	failed := false

	for _, o := range outcomes {
		if !o.ok {
			failed = true
			errs = append(errs, o.messages...)
			continue
		}
		values = append(values, o.value)
		warnings = append(warnings, o.messages...)
	}

	if failed {
		return Outcome[[]T, M]{messages: normalize(errs)}
	}
	return Outcome[[]T, M]{value: values, messages: normalize(warnings), ok: true}
}

// MapFailure transforms the error list of a failed outcome.
//
// On success the warnings are discarded and a bare success of the new message
// type is returned.
func MapFailure[T, M, N any](o Outcome[T, M], f func([]M) []N) Outcome[T, N] {
	if o.ok {
		return Outcome[T, N]{value: o.value, ok: true}
	}
	return Outcome[T, N]{messages: normalize(f(o.Errors()))}
}

// Either folds an outcome into a single value.
func Either[T, M, R any](o Outcome[T, M], onSuccess func(T, []M) R, onFailure func([]M) R) R {
	if o.ok {
		return onSuccess(o.value, o.Warnings())
	}
	return onFailure(o.Errors())
}

// FailOnWarnings moves a successful outcome that carries warnings onto the
// failure track, turning the warnings into errors.
func FailOnWarnings[T, M any](o Outcome[T, M]) Outcome[T, M] {
	if o.ok && len(o.messages) > 0 {
		return Outcome[T, M]{messages: o.messages}
	}
	return o
}
