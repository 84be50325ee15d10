/*
Package knobs is a typed parameter registry for programs that expose tunable settings.

A registry holds three kinds of parameters: boolean flags, bounded numeric values and
enumerated strings. Assignments arrive as name=value text, usually straight from the
command line, and are validated against each parameter's constraints.

# Assignment is forgiving, lookup is strict

Setting a parameter never fails. An unknown name, an unparsable number or a value outside
the allowed range or options leaves the registry unchanged; the outcome is reported to
hooks and to the logger, not to the caller. Reading a parameter that does not exist, on the
other hand, returns an error wrapping domain.ErrUnknownParameter instead of a zero value.

# Usage

	reg, err := knobs.Load(os.Args[1:],
		knobs.WithSeed(func(r *registry.Registry) error {
			if err := r.DefineNumeric("threshold", 0.5, 0, 1, 0.1); err != nil {
				return err
			}
			return r.DefineString("mode", "fast", []string{"fast", "accurate"})
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	threshold, err := reg.Param("threshold")

Parameters can also be declared in a YAML or JSON file (see package schema) and loaded with
WithDefinitionsFile. WithStore restores values persisted by one of the ports.ValueStore
adapters before the arguments are applied.
*/
package knobs
