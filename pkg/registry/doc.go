/*
Package registry implements the parameter registry: three name-keyed mappings for
boolean, numeric and enumerated string parameters, plus the operations that fill and
read them.

Assignment is best-effort. Set and Apply never return errors; input that names an
unknown parameter, fails to parse, or violates a constraint is dropped and reported
only through the returned Outcome or Summary, the logger and the hooks.

Lookup is strict. Param, ParamBool and ParamStr each search exactly one mapping and
return an error wrapping domain.ErrUnknownParameter when the name is missing.

	reg := registry.New()
	_ = reg.DefineNumeric("threshold", 0.5, 0, 1, 0.1)
	_ = reg.DefineString("mode", "fast", []string{"fast", "accurate"})

	reg.Apply(os.Args[1:]) // e.g. threshold=0.8 mode=accurate

	threshold, err := reg.Param("threshold")
*/
package registry
