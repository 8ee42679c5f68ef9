package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/console"
	"github.com/mrlokans/bookshelf/internal/services"
	"github.com/mrlokans/bookshelf/internal/vehicles"
)

// =============================================================================
// Catalog Storage
// =============================================================================

// Store implementations
var _ catalog.Store = (*catalog.MemoryCatalog)(nil)
var _ catalog.Store = (*catalog.IndexedCatalog)(nil)

// AuthorFinder implementations
var _ catalog.AuthorFinder = (*catalog.IndexedCatalog)(nil)

// =============================================================================
// Output
// =============================================================================

// Reporter implementations
var _ services.Reporter = (*console.Printer)(nil)

// =============================================================================
// Vehicle Demo
// =============================================================================

var _ vehicles.Factory = vehicles.USFactory{}
var _ vehicles.Factory = vehicles.EUFactory{}
var _ vehicles.Vehicle = vehicles.Car{}
var _ vehicles.Vehicle = vehicles.Motorcycle{}
