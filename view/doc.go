// Package view binds grid items to the views that draw and hit-test them.
//
// A layout pass turns a list of Schema (layout + view pairs) into CacheView
// entries, one per visible region of an item. CacheView holds only borrowed
// references to its Layout and View: entries are valid for the layout pass that
// built them and must be discarded before the next pass runs.
//
// Drawing goes through Surface, a clipped window onto a tcell.Screen. Regions
// whose layout is floating are excluded from the clip of everything drawn after
// them, so overlays survive later fills.
//
// Usage pattern:
//
//	schemas := []view.Schema{
//	    {Layout: view.Right(1), View: view.Separator{Rune: '│'}},
//	    {Layout: view.Fill(), View: &view.Text{Source: cellText}},
//	}
//	item := view.NewCacheItem(id, cellRect, schemas)
//	item.Draw(surface, ctx, nil)
//	text, ok := item.TooltipText(pointer)
package view
