package model

// Package model defines domain data structures shared across the app:
// animation entries, their origin roots, and the named failure kinds the
// UI turns into dialogs or an idle display state.
