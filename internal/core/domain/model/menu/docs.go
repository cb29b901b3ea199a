// Package menu provides the menu catalog for the food ordering service.
//
// The package includes:
//   - Item: a menu entry with identity, name, category, unit price and availability
//   - Catalog: the ordered set of items answering lookups by identifier
//
// Key business rules:
//   - Item identifiers are positive and unique within a catalog
//   - Item names are non-empty and prices are non-negative
//   - Only availability changes after an item is created, and only through the catalog
//   - Catalog order is the order items were loaded or added in; order construction
//     relies on it for deterministic line ordering
package menu
