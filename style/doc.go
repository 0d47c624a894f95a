/*
Package style defines the typed property set of the styling engine.

Styling knows a closed set of 19 properties (sizing, spacing, layout
direction, docking, overflow, colors, text attributes and borders). Two
representations exist:

  - style.Set is a partial style: every property is optional. Sets are
    what stylesheet rules carry and what the cascade merges.
  - style.Computed is a total style: every property has a value. Computed
    styles are produced exclusively by the cascade resolver and consumed
    by layout.

Inheritance is a fixed per-property attribute: color, text-align,
text-style and visibility flow from parent to child; geometry and
background do not.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'gilt.style'.
func tracer() tracing.Trace {
	return tracing.Select("gilt.style")
}
