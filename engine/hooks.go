package engine

// The instrumentation runtime is external to this repo (spec §1
// Non-goals); these event payloads are the stand-in contract it is assumed
// to call against. Each IID addresses a node indexed by syntax.Facade at
// parse time (spec §4.1's "node at L" is recovered via facade.Location).

// FunctionEnterEvent reports entry into a function (spec §6.1
// on_function_enter).
type FunctionEnterEvent struct {
	IID      int
	Name     string
	IsLambda bool
}

// ReadEvent reports a bare-name or compound-expression read (spec §6.1
// on_read, §4.2).
type ReadEvent struct {
	IID int
}

// WriteEvent reports a plain assignment (spec §6.1 on_write, §4.3).
// TypeTag is the runtime type tag of the assigned value, needed to decide
// immutability for the aliasing rule; the engine has no interpreter of its
// own to compute it (spec §1 Non-goals), so the instrumentation runtime
// supplies it directly.
type WriteEvent struct {
	IID     int
	TypeTag string
}

// AugmentedWriteEvent reports an `x op= e` write (spec §6.1
// on_augmented_write, §4.3).
type AugmentedWriteEvent struct {
	IID     int
	TypeTag string
}

// AttributeReadEvent reports an attribute access `r.a` (spec §6.1
// on_attribute_read, §4.3). IsBoundMethod reports whether the accessed
// value is itself a bound method object, the second of the two mutation
// triggers alongside the Mutators name set.
type AttributeReadEvent struct {
	IID           int
	IsBoundMethod bool
}

// SubscriptReadEvent reports an indexed read `x[k]` (spec §6.1
// on_subscript_read, §4.5).
type SubscriptReadEvent struct {
	IID int
}

// ControlEvent reports entry into or exit from an if/for/while construct
// (spec §6.1 on_enter_if/on_exit_if/on_enter_for/on_exit_for/
// on_enter_while/on_exit_while, §4.4).
type ControlEvent struct {
	IID int
}
