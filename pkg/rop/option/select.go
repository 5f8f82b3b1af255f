package option

import "github.com/ib-77/monads/internal/contract"

// Select maps the wrapped value through mapper. On None mapper is not called.
func Select[T, U any](o Option[T], mapper func(T) U) Option[U] {
	if mapper == nil {
		contract.ArgumentNil("mapper")
	}

	if o.ok {
		return Some(mapper(o.value))
	}
	return None[U]()
}

// SelectMany chains an optional lookup, flattening the nested Option.
func SelectMany[T, U any](o Option[T], binder func(T) Option[U]) Option[U] {
	if binder == nil {
		contract.ArgumentNil("binder")
	}

	if o.ok {
		return binder(o.value)
	}
	return None[U]()
}

// Match calls exactly one of onSome and onNone and returns its result.
func Match[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if onSome == nil {
		contract.ArgumentNil("onSome")
	}
	if onNone == nil {
		contract.ArgumentNil("onNone")
	}

	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}
