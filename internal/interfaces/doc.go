// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Catalog Storage
//
//   - Store: add, remove-by-title and list (internal/catalog/store.go)
//   - AuthorFinder: lookup by author, implemented by IndexedCatalog
//
// ## Output
//
//   - Reporter: user-facing result of each LibraryManager operation
//     (internal/services/interfaces.go), implemented by console.Printer
//
// ## Vehicle Demo
//
//   - Factory / Vehicle: region-specific creational demo (internal/vehicles)
//
// # Adding a New Catalog Backend
//
//  1. Implement Store in internal/catalog/
//
//     type SortedCatalog struct {
//         *MemoryCatalog
//     }
//
//     func (c *SortedCatalog) List() ([]entities.Book, error)
//
//     var _ Store = (*SortedCatalog)(nil)
//
//  2. Register a backend name in catalog.New
//
//  3. Extra capabilities (like AuthorFinder) are separate interfaces. The
//     LibraryManager discovers them with a type assertion on the interface,
//     never on the concrete type.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
