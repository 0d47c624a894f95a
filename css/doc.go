/*
Package css provides the value types shared by the stylesheet scanner,
parser and the style resolver: scalars with terminal units, four-sided
scalar boxes, and colors.

Scalars are option types in the spirit of CSS dimensions: a scalar is
either an absolute cell count, a fraction of the remaining space (fr),
a percentage of the parent, a viewport-relative value (vw/vh), or auto.
Clients match on the kind instead of switching over raw unit tags.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package css

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'gilt.css'.
func tracer() tracing.Trace {
	return tracing.Select("gilt.css")
}
