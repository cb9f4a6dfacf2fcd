// Package narration plays the pre-recorded clip for a sequence position.
//
// Clips are MP3 files decoded in memory and rendered through a Sink; the
// default sink drives the system output device through miniaudio.
package narration
