package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

// Property identifies one of the supported style properties. The set is
// closed: stylesheet parsing rejects declarations for names outside it.
type Property uint8

const (
	PropDisplay Property = iota
	PropVisibility
	PropLayout
	PropDock
	PropOverflowX
	PropOverflowY
	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropMargin
	PropPadding
	PropColor
	PropBackground
	PropTextAlign
	PropTextStyle
	PropBorder

	NumProperties int = iota
)

var propertyNames = [...]string{
	PropDisplay:    "display",
	PropVisibility: "visibility",
	PropLayout:     "layout",
	PropDock:       "dock",
	PropOverflowX:  "overflow-x",
	PropOverflowY:  "overflow-y",
	PropWidth:      "width",
	PropHeight:     "height",
	PropMinWidth:   "min-width",
	PropMinHeight:  "min-height",
	PropMaxWidth:   "max-width",
	PropMaxHeight:  "max-height",
	PropMargin:     "margin",
	PropPadding:    "padding",
	PropColor:      "color",
	PropBackground: "background",
	PropTextAlign:  "text-align",
	PropTextStyle:  "text-style",
	PropBorder:     "border",
}

var propertiesByName = func() map[string]Property {
	m := make(map[string]Property, NumProperties)
	for p, name := range propertyNames {
		m[name] = Property(p)
	}
	return m
}()

// String returns the stylesheet-facing name of a property.
func (p Property) String() string {
	if int(p) < len(propertyNames) {
		return propertyNames[p]
	}
	return "<invalid property>"
}

// ParseProperty resolves a stylesheet property name. The second return
// value is false for names outside the supported set. The 'overflow'
// shorthand is not a property; the parser expands it to overflow-x and
// overflow-y before reaching this table.
func ParseProperty(name string) (Property, bool) {
	p, ok := propertiesByName[name]
	return p, ok
}

// inherited flags the properties whose computed value flows from parent
// to child when no rule sets them.
var inherited = [NumProperties]bool{
	PropVisibility: true,
	PropColor:      true,
	PropTextAlign:  true,
	PropTextStyle:  true,
}

// Inherited denotes whether a property inherits the parent's computed
// value when unset.
func (p Property) Inherited() bool {
	return int(p) < NumProperties && inherited[p]
}

// Properties lists all supported properties in declaration table order.
func Properties() []Property {
	ps := make([]Property, NumProperties)
	for i := range ps {
		ps[i] = Property(i)
	}
	return ps
}
