package constants

import "time"

// Sound Effect Envelopes
const (
	// MatchSoundDuration is the total length of the match chime
	MatchSoundDuration = 180 * time.Millisecond
	// MatchSoundAttack is the fade-in of the match chime
	MatchSoundAttack = 5 * time.Millisecond
	// MatchSoundRelease is the fade-out of the match chime
	MatchSoundRelease = 120 * time.Millisecond

	// MismatchSoundDuration is the total length of the mismatch buzz
	MismatchSoundDuration = 150 * time.Millisecond
	// MismatchSoundAttack is the fade-in of the mismatch buzz
	MismatchSoundAttack = 2 * time.Millisecond
	// MismatchSoundRelease is the fade-out of the mismatch buzz
	MismatchSoundRelease = 60 * time.Millisecond

	// VictoryNoteDuration is the length of each note in the victory chime
	VictoryNoteDuration = 140 * time.Millisecond
	// VictoryNoteAttack is the fade-in of each victory note
	VictoryNoteAttack = 4 * time.Millisecond
	// VictoryNoteRelease is the fade-out of each victory note
	VictoryNoteRelease = 100 * time.Millisecond

	// RevealSoundDuration is the length of the card-flip tick
	RevealSoundDuration = 40 * time.Millisecond
)
