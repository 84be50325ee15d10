// Package schema loads parameter definitions used to seed a registry.
//
// A definitions document is a flat list of parameters, in YAML or JSON:
//
//	parameters:
//	  - name: threshold
//	    type: numeric
//	    default: 0.5
//	    min: 0
//	    max: 1
//	    step: 0.1
//	  - name: mode
//	    type: string
//	    default: fast
//	    options: [fast, accurate]
//	  - name: verbose
//	    type: bool
//	    default: false
//
// Entries are decoded with mapstructure so unknown keys are rejected per entry.
// Validate reports every problem in one AggregateError instead of stopping at the
// first:
//
//	defs, err := schema.LoadDefinitions("params.yaml")
//	if err != nil {
//	    return err
//	}
//	if err := schema.Seed(reg, defs); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        log.Println(e)
//	    }
//	}
//
// The document has no nesting, includes or expressions; it only declares the flat
// shape of a registry.
package schema
