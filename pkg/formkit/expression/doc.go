// Package expression evaluates element visibility conditions against input
// values.
//
// Conditions use placeholder syntax such as "{x} = 1" or "{age} >= 18 and
// {country} = 'US'", translated to expr-lang source and compiled once per
// distinct text. A Condition keeps its compiled programs across expression
// rebinding, so hot-editing a visibility expression between evaluations
// only pays the compile cost for genuinely new text.
package expression
