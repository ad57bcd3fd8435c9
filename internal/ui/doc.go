// Package ui implements the boat dashboard as a set of Bubble Tea panels
// wired together by AppModel.
//
// Core pieces:
//   - View: a panel with its own model, update, view (Elm-style)
//   - AppModel: owns the bindings, loading coordinators, save flow, marker
//     composer and widget bridge; routes messages to panels
//   - FocusManager: tracks and rotates focus across panels
//
// Panels never fetch data themselves. They render state the app hands them
// and emit messages; the app turns those into binding tickets and commands.
package ui
