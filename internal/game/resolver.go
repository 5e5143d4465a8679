package game

import "math"

// resolveWindow is the axial span around the craft inside which
// segments are collision-tested. It comfortably exceeds the craft
// radius plus gate thickness, so skipping is a cost optimization only:
// no geometrically reachable segment is ever skipped.
const resolveWindow = 4.0

// Resolver turns geometry into semantic events each tick: gate
// intersections become crash events, coin intersections become collect
// events tagged by the segment's classification. It never mutates
// score, lives or the segments themselves.
type Resolver struct{}

// Resolve runs the per-tick collision pass for a live craft. At most
// one crash event is produced per call; a crash stops further testing.
func (Resolver) Resolve(craft *Craft, lane *Lane) []Event {
	if !craft.Alive {
		return nil
	}

	sphere := craft.Bounds()
	gap := lane.Config().GapHeight
	var events []Event

	for i, seg := range lane.Segments() {
		if math.Abs(seg.Z-craft.Pos.Z) > resolveWindow {
			continue
		}

		if sphere.IntersectsBox(seg.LowerGate(gap)) || sphere.IntersectsBox(seg.UpperGate(gap)) {
			events = append(events, Event{Kind: EventCrash, Segment: i, At: craft.Pos})
			return events
		}

		if seg.CoinVisible {
			coin := seg.Coin()
			if sphere.IntersectsSphere(coin) {
				kind := EventCollectBonus
				if seg.Hazard {
					kind = EventCollectHazard
				}
				events = append(events, Event{Kind: kind, Segment: i, At: coin.Center})
			}
		}
	}
	return events
}
