// Package pagemeta fetches a single web page and resolves a best-effort
// title and author for it.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package pagemeta
