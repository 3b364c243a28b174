// Package director encodes fixed, named construction sequences ("recipes")
// on top of the report builder.
//
// Each recipe takes a fresh, unconfigured builder plus recipe-specific
// parameters, drives a deterministic sequence of builder operations, and
// returns the finalized specification from Build. The recipes hold no
// state of their own: they are pure functions of their inputs.
//
// Design decision: Recipes live here rather than on the builder so that the
// builder stays a primitive vocabulary and call sites never repeat the long
// setter sequences for common report shapes. Because every recipe sets the
// title, format, and both period dates unconditionally, a recipe-produced
// report cannot fail validation unless the recipe itself is misconfigured.
package director
