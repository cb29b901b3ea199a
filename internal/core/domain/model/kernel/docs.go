// Package kernel provides core domain primitives shared by the menu and order models.
//
// The package includes:
//   - Money: a non-negative, decimal-exact monetary amount
//
// Primitives are immutable value objects guarded by guard.ConstructorGuard, so a
// zero value that bypassed the constructor is rejected by Validate.
package kernel
