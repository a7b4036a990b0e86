// Package issue holds diagnostics produced by an analysis pass and the
// sorted store the editor queries while the user types.
//
// Issue ids are fresh per analysis. Nothing here tries to keep identity
// across analyses except Reidentify, which callers opt into for selection.
package issue
