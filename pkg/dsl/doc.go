/*
Package dsl provides a fluent Go API for declaring parameter sets.

It is the in-code counterpart of a definitions file: declarations are validated by
package schema, so a builder and a YAML file describing the same parameters produce the
same registry.

Example usage:

	b := dsl.New()

	b.Add("threshold").
		Numeric(0.5).
		Range(0, 1).
		Step(0.1).
		Describe("Minimum confidence")

	b.Add("mode").
		String("fast", "fast", "accurate")

	b.Add("verbose").
		Bool(false)

	reg, err := b.Build()
	// or: knobs.Load(os.Args[1:], knobs.WithDefinitions(b.Definitions()...))
*/
package dsl
