// Package ui is the Bubble Tea front end of tripplanner.
//
// Core abstractions:
//   - View: A screen with its own model, update, view (Elm-style)
//   - AppModel: Root model; owns the trip session and switches between modes
//   - KeyHandler: Leader key (SPC) dispatch over a mode-aware KeybindRegistry
//
// Screens, in the order a search walks through them: SearchFormView,
// DestinationListView, DestinationDetailView.
package ui
