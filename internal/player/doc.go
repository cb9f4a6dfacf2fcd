package player

// Package player implements the sequence player: the playback and navigation
// state machine that walks the 72 names. All transitions go through the
// Player methods; timers are one-shot tasks guarded by liveness tokens so a
// cancelled callback can never mutate state.
