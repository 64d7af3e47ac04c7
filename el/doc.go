// Package el provides terse element constructors for building graft trees.
//
// Constructors accept a mix of argument kinds:
//
//	dom.Attr / []dom.Attr      attributes
//	dom.Node                   static children
//	string                     shorthand for a text child
//	cell.Value[dom.Node]       reactive child, bound on construction
//	cell.Value[string]         reactive text child
//	func() dom.Node            shorthand for a derived reactive child
//	nil                        ignored (allows conditional arguments)
package el
