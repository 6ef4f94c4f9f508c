// Package fastscroll provides a composite list container with a fast-scroll
// indicator: a draggable handle on the right edge, an optional track, and a
// section bubble driven by the adapter's section index.
//
// The central type is [FastScrollView], which owns exactly two children, a
// [ListView] and a [Scroller], constructed eagerly and bound together while
// the container is mounted:
//
//	view := fastscroll.NewFastScrollView(fastscroll.Config{})
//	view.SetAdapter(contacts) // SectionIndexer adapters enable the bubble
//
// Styling comes from a [Theme], loadable from YAML via [LoadTheme], and is
// forwarded to both children identically. On embedders without nested
// scroll support the container negotiates a degraded integration with an
// enclosing [RefreshContainer]; see [ResolveCompat].
package fastscroll
