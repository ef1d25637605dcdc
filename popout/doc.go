// Package popout is a bubbletea component that grows a compact inline
// header into a full-screen card and shrinks it back.
//
// The parent renders the compact header with Render, reports where it put
// it with a core.GeometryMsg, and draws Overlay on top of its whole view.
// While Shown is true the overlay expects every key and mouse event.
//
//	pop := popout.New(header, content)
//	...
//	cmd := pop.Update(msg)
//	view := pop.Overlay(parentView)
package popout
