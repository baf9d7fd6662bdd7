// Package anyvalue provides Value, a type-erased container that remembers the
// static type its content was wrapped as. That type is the identity the
// converter registry dispatches on.
package anyvalue
