// Package menu implements the in-process overlay menu: a tree of
// controls that consume raw host input events, persist their values
// per control, and publish synchronous change notifications.
//
// Controls are a closed set of variants sharing the Component
// contract: KeyBind (a boolean bound to a physical key, momentary or
// latched), Bool, Slider, List and Separator. A Menu owns its
// controls and dispatches every host event to each visible one;
// controls self-select by hit-testing pointer events against bounds
// obtained from a BoundsProvider and by matching key events against
// their bound key.
//
// Nothing in this package blocks or retries. Persistence is a single
// synchronous best-effort write per mutation; a failed write never
// rolls back the in-memory value. All event handling happens on the
// host's single input thread.
package menu
