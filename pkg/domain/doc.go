// Package domain contains the core domain entities and types used by the
// application. These types represent the taxi park concepts (drivers,
// passengers, trips and the reports derived from them) and are free of
// infrastructure concerns so they can be shared across packages.
package domain
