// Package tracker keeps track of which section of a one-page layout is
// currently "active".
//
// Two signals feed the active section:
//
//   - Visibility observation: every rendered region is watched and, when its
//     visible fraction crosses the threshold (0.5 by default), it becomes the
//     active candidate. Only crossings are reported, the way a browser
//     intersection observer reports them.
//   - Proximity polling: on scroll and resize the region whose top edge is
//     closest to an anchor 35% down the viewport becomes active.
//
// Both producers run on the caller's event loop. When both run for the same
// event (see Tracker.Update) polling is applied last and therefore wins.
// Among simultaneous observation crossings the entry with the largest visible
// fraction wins; equal fractions go to the section that comes first in the
// document.
//
// Regions that have not been rendered yet report ok=false from Bounds and are
// skipped by both producers.
//
// # Usage
//
//	t := tracker.New([]tracker.Section{
//	    {ID: "home", Region: homeRegion},
//	    {ID: "about", Region: aboutRegion},
//	})
//	cancel := t.Subscribe(func(id string) { highlight(id) })
//	defer cancel()
//
//	t.Update(tracker.Viewport{Width: 1280, Height: 800, ScrollY: 640})
//	if top, ok := t.ScrollTo("about", vp); ok {
//	    animateTo(top)
//	}
package tracker
