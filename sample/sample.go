package sample

import (
	"gitlab.com/gomidi/midi/v2/smf"
)

// Excerpt copies up to maxNotes notes per track starting at fromTick, shifted
// to start at zero. Meta events before fromTick are kept at the start so the
// excerpt keeps its tempo, meter and names. Notes already sounding at fromTick
// are left out, and every note that is kept is also released.
func Excerpt(mf *smf.SMF, fromTick uint64, maxNotes int) *smf.SMF {
	res := smf.New()
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks, cursor uint64
		var numNotes int
		sounding := make(map[uint8]bool)

		add := func(evt smf.Event) {
			var at uint64
			if absTicks > fromTick {
				at = absTicks - fromTick
			}
			newTrack.Add(uint32(at-cursor), evt.Message)
			cursor = at
		}

	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			var channel, key, velocity uint8
			switch {
			case evt.Message.Is(smf.MetaEndOfTrackMsg):
				break TrackEventLoop
			case evt.Message.GetNoteStart(&channel, &key, &velocity):
				if absTicks < fromTick || numNotes >= maxNotes {
					continue
				}
				sounding[key] = true
				numNotes += 1
				add(evt)
			case evt.Message.GetNoteEnd(&channel, &key):
				if !sounding[key] {
					continue
				}
				delete(sounding, key)
				add(evt)
			default:
				if absTicks > fromTick && numNotes >= maxNotes {
					continue
				}
				add(evt)
			}
			if numNotes >= maxNotes && len(sounding) == 0 {
				break TrackEventLoop
			}
		}

		newTrack.Close(0)
		res.Add(newTrack)
	}

	return res
}
