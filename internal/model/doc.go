package model

// Package model defines domain data structures shared across the app: the
// fixed sequence of 72 names, catalog records, playback states and the
// player snapshot handed to the presentation layer.
