// Package errs holds the validation and lookup errors shared by the menu, order and
// use case packages.
//
// Callers match on the sentinels with errors.Is; the HTTP adapter maps them to status codes:
//
//	ErrValueIsRequired    a customer name, menu item name or order line is missing (400)
//	ErrValueIsInvalid     a negative quantity or price, or a name with a comma or line break (400)
//	ErrValueIsOutOfRange  a menu item id below 1 or a query limit above its maximum (400)
//	ErrObjectNotFound     an unknown menu item id on an availability update (404)
//
// The typed errors carry the offending parameter and an optional cause, and unwrap to their
// sentinel.
package errs
