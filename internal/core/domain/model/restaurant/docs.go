// Package restaurant provides the restaurant aggregate and its menu items.
//
// A restaurant belongs to exactly one owner; the data model allows an owner
// to hold several restaurants even though the dashboard assumes one. Menu
// items are created, edited, and deleted only through the owning
// restaurant's owner, which the application layer enforces via the
// ownership check exposed here.
package restaurant
