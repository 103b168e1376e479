// Package media resolves per-class asset declarations (CSS, JS) through
// a class hierarchy.
//
// Form widget classes declare only their own media additions; the
// resolver merges each class's contribution on top of its ancestors'
// contributions, all the way up to the hierarchy root. The root itself
// contributes nothing.
//
// # Declarations
//
// Classes are registered with an explicit parent link and an optional
// define hook returning that class's own contribution:
//
//	reg := media.NewRegistry("widget")
//	reg.MustRegister("textinput", "", func() media.Manifest {
//	    return media.Manifest{"css": media.Paths("forms/css/text.css")}
//	})
//	reg.MustRegister("datepicker", "textinput", func() media.Manifest {
//	    return media.Manifest{"js": media.Paths("forms/js/calendar.js")}
//	})
//
// A nil hook contributes an empty manifest. Hooks must return only the
// class's own additions; ancestor contributions are composed by the
// resolver, and a hook that re-declares them would double-count.
//
// Declarations can also be loaded from a YAML file, see LoadYAML.
//
// # Merge Semantics
//
// Ancestor contributions form the base layer and the derived class is
// overlaid on top:
//
//   - list values are concatenated, ancestor entries first; duplicates
//     are kept, not deduplicated
//   - string-keyed sub-maps are merged recursively by the same rule
//   - on a scalar collision, or when the two sides disagree on shape,
//     the derived value wins at that key
//
// # Instances
//
// Instances memoize their merged manifest on first read of Media and
// return the identical value on every later read. An instance built
// with NewPresetInstance carries a fixed manifest and never consults
// the hierarchy at all.
package media
