// Package panel drives a small set of widgets (text label, picture,
// single-choice selector) from a remotely fetched schema document and keeps
// selector state in sync with bound controls.
//
// # Flow
//
//	Source → Codec → RawDocument → Builder → ModelState (owned by Facade)
//	                                             │
//	                 order cell changes ─────────┴──→ Composer → []RenderUnit
//
// A Facade starts empty and stays renderable whatever happens: if the
// document cannot be fetched or decoded every widget is absent and the
// order is empty. Widgets whose required fields are missing are left out
// individually.
//
// # Two-way binding
//
// Observable separates the two directions of a binding. Set changes the
// value and notifies the single listener; ApplyExternal changes the value
// silently and is what a control uses to report its own change:
//
//	sel, _ := facade.SelectorWidget()
//	b := panel.Bind(sel.SelectedID, picker.SelectRow)
//	picker.OnChange(b.Changed)
//
//	facade.SetSelectedID(2) // picker.SelectRow(2)
//
// # Composition
//
// Compose walks the order and emits one RenderUnit per built widget. Names
// whose widget is absent are skipped; the first name no widget kind claims
// ends composition. Composer re-runs Compose whenever the order changes:
//
//	c := panel.NewComposer(facade, renderer.Draw)
//	c.Start()
//	facade.ShuffleOrder() // renderer.Draw(...) with the new order
//
// # Threading
//
// Models, cells and composers are single-threaded. Facade.Fetch is the
// only call meant for another goroutine; pass its result to Facade.Settle
// on the model's goroutine.
package panel
